package library

import (
	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

// Favorites returns a copy of the favorites list, every member stamped.
func (l *Library) Favorites() []quote.Quote {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]quote.Quote, len(l.favorites))
	for i, q := range l.favorites {
		q.IsFavorite = true
		out[i] = q
	}
	return out
}

// IsFavorite reports whether the quote id is in the favorites registry.
func (l *Library) IsFavorite(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isFavorite(id)
}

// ToggleFavorite flips the quote's membership in the favorites registry,
// persists the list, and propagates the new flag to every resident copy:
// the active result list, the quote-of-the-day record (only when its language
// matches the current UI language), and the open overlay's target. Views that
// re-read through the library would pick the flag up anyway; propagation
// keeps held pointers honest between reads.
func (l *Library) ToggleFavorite(q quote.Quote) {
	l.mu.Lock()

	nowFavorite := !l.isFavorite(q.ID)
	if nowFavorite {
		q.IsFavorite = true
		l.favorites = append(l.favorites, q)
	} else {
		kept := l.favorites[:0]
		for _, f := range l.favorites {
			if f.ID != q.ID {
				kept = append(kept, f)
			}
		}
		l.favorites = kept
	}
	l.store.SetFavoriteQuotes(l.favorites)

	for i := range l.results {
		if l.results[i].ID == q.ID {
			l.results[i].IsFavorite = nowFavorite
		}
	}
	if l.qotd != nil && l.qotd.Quote.ID == q.ID && l.qotd.Language == l.language {
		l.qotd.Quote.IsFavorite = nowFavorite
	}
	if l.modalQuote != nil && l.modalQuote.ID == q.ID {
		l.modalQuote.IsFavorite = nowFavorite
	}

	// Cache entries are stamped on read, so stored copies need no touch-up.

	notifier, lang := l.notifier, l.language
	l.mu.Unlock()

	if nowFavorite {
		notifier.Notify(msgFavoriteAdded(lang), NoticeSuccess)
	} else {
		notifier.Notify(msgFavoriteRemoved(lang), NoticeSuccess)
	}
}
