package library

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
	"github.com/shristy0611/Wisdom-Bridge/internal/store"
)

// QuoteOfTheDay returns the current daily quote record with its favorite
// flag stamped, or nil when none is available.
func (l *Library) QuoteOfTheDay() *store.QuoteOfTheDay {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.qotd == nil {
		return nil
	}
	out := *l.qotd
	out.Quote.IsFavorite = l.isFavorite(out.Quote.ID)
	return &out
}

// EnsureQuoteOfTheDay makes the daily quote current for today's date and the
// current UI language, fetching from the guidance backend only when neither
// the in-memory record nor the persisted one passes the freshness gate.
// Concurrent calls coalesce: while a fetch is in flight every other call
// returns immediately. On fetch failure the in-memory record is cleared and
// the error is logged, never surfaced; the UI shows an unavailable state.
func (l *Library) EnsureQuoteOfTheDay(ctx context.Context) {
	l.mu.Lock()
	if l.qotdFetching {
		l.mu.Unlock()
		return
	}
	l.qotdFetching = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.qotdFetching = false
		l.mu.Unlock()
	}()

	today := time.Now().Format("2006-01-02")

	l.mu.Lock()
	lang := l.language
	if fresh(l.qotd, today, lang) {
		// Already current; stamping happens on read.
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	if stored := l.store.QuoteOfTheDay(); fresh(stored, today, lang) {
		l.mu.Lock()
		l.qotd = stored
		l.mu.Unlock()
		return
	}

	q, err := l.provider.FetchQuoteOfTheDay(ctx, lang)
	if err != nil || q == nil {
		log.Warn("quote of the day unavailable", "lang", lang, "err", err)
		l.mu.Lock()
		l.qotd = nil
		l.mu.Unlock()
		return
	}

	record := store.QuoteOfTheDay{Quote: *q, DateFetched: today, Language: lang}
	l.store.SetQuoteOfTheDay(record)
	l.mu.Lock()
	l.qotd = &record
	l.mu.Unlock()
}

// fresh is the freshness gate: fetched today, in the given language, with a
// quote id present.
func fresh(qotd *store.QuoteOfTheDay, today string, lang quote.Language) bool {
	return qotd != nil &&
		qotd.DateFetched == today &&
		qotd.Language == lang &&
		qotd.Quote.ID != ""
}
