// Package library is the single source of truth for quote state: the
// theme/language result cache and its paired search history, the favorites
// and reflections registries, and the quote-of-the-day record. Every view
// that surfaces a quote reads it through here, and every read recomputes the
// favorite flag from the registry so independently-held copies never diverge.
package library

import (
	"sync"

	"github.com/shristy0611/Wisdom-Bridge/internal/guidance"
	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
	"github.com/shristy0611/Wisdom-Bridge/internal/store"
)

// MaxHistoryEntries bounds the search history to the most recent searches.
const MaxHistoryEntries = 10

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notifier receives user-facing confirmation signals (toasts). Mutating
// operations emit through it on success.
type Notifier interface {
	Notify(message string, kind NoticeKind)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, NoticeKind) {}

// Library owns all quote state. Methods are safe for concurrent use; the TUI
// event loop and its background fetch commands share one instance.
type Library struct {
	mu       sync.Mutex
	store    *store.Store
	provider guidance.Provider
	notifier Notifier

	language    quote.Language
	history     []store.HistoryEntry
	cache       map[string]store.CacheEntry
	favorites   []quote.Quote
	reflections map[string]store.Reflection

	qotd         *store.QuoteOfTheDay
	qotdFetching bool

	// Resident copies that favorite toggles propagate to eagerly.
	results    []quote.Quote
	modalQuote *quote.Quote
}

// New loads all persisted state and returns a ready Library.
func New(s *store.Store, provider guidance.Provider, lang quote.Language) *Library {
	return &Library{
		store:       s,
		provider:    provider,
		notifier:    noopNotifier{},
		language:    lang,
		history:     s.SearchHistory(),
		cache:       s.CachedQuotes(),
		favorites:   s.FavoriteQuotes(),
		reflections: s.Reflections(),
	}
}

// SetNotifier installs the toast sink. Pass nil to silence notices.
func (l *Library) SetNotifier(n Notifier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n == nil {
		n = noopNotifier{}
	}
	l.notifier = n
}

func (l *Library) Language() quote.Language {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.language
}

// SetLanguage switches the UI language and drops the active result set, which
// is tied to the old language. The caller re-runs EnsureQuoteOfTheDay; the
// freshness gate is language-sensitive, so the switch forces a fetch in the
// new language.
func (l *Library) SetLanguage(lang quote.Language) {
	if !lang.Valid() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if lang == l.language {
		return
	}
	l.language = lang
	l.results = nil
	l.modalQuote = nil
}

// Results returns the active search-result list, favorite-stamped.
func (l *Library) Results() []quote.Quote {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stamped(l.results)
}

// SetResults installs quotes as the active search-result list.
func (l *Library) SetResults(quotes []quote.Quote) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = l.stamped(quotes)
}

// ClearResults drops the active result set.
func (l *Library) ClearResults() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = nil
}

// ModalQuote returns the quote currently targeted by an overlay, stamped, or
// nil when no overlay is open.
func (l *Library) ModalQuote() *quote.Quote {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.modalQuote == nil {
		return nil
	}
	q := *l.modalQuote
	q.IsFavorite = l.isFavorite(q.ID)
	return &q
}

// SetModalQuote records the overlay target so favorite toggles reach it.
func (l *Library) SetModalQuote(q *quote.Quote) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if q == nil {
		l.modalQuote = nil
		return
	}
	copied := *q
	copied.IsFavorite = l.isFavorite(copied.ID)
	l.modalQuote = &copied
}

// Provider exposes the guidance backend for search fetches.
func (l *Library) Provider() guidance.Provider {
	return l.provider
}

// FindQuote looks a quote up by id across favorites, current results, the
// daily quote and the search cache. Returns nil when the quote is no longer
// resident anywhere.
func (l *Library) FindQuote(id string) *quote.Quote {
	l.mu.Lock()
	defer l.mu.Unlock()

	scan := func(quotes []quote.Quote) *quote.Quote {
		for _, q := range quotes {
			if q.ID == id {
				q.IsFavorite = l.isFavorite(id)
				return &q
			}
		}
		return nil
	}

	if q := scan(l.favorites); q != nil {
		return q
	}
	if q := scan(l.results); q != nil {
		return q
	}
	if l.qotd != nil && l.qotd.Quote.ID == id {
		q := l.qotd.Quote
		q.IsFavorite = l.isFavorite(id)
		return &q
	}
	for _, entry := range l.cache {
		if q := scan(entry.Quotes); q != nil {
			return q
		}
	}
	return nil
}

// cacheKey builds the composite cache key: lowercased theme plus language.
func cacheKey(theme string, lang quote.Language) string {
	return store.CacheKey(theme, lang)
}

// stamped returns a copy of quotes with IsFavorite recomputed from the
// favorites registry. Callers must hold l.mu.
func (l *Library) stamped(quotes []quote.Quote) []quote.Quote {
	if quotes == nil {
		return nil
	}
	out := make([]quote.Quote, len(quotes))
	for i, q := range quotes {
		q.IsFavorite = l.isFavorite(q.ID)
		out[i] = q
	}
	return out
}

// isFavorite reports registry membership. Callers must hold l.mu.
func (l *Library) isFavorite(id string) bool {
	for _, f := range l.favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}
