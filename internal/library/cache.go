package library

import (
	"time"

	"github.com/google/uuid"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
	"github.com/shristy0611/Wisdom-Bridge/internal/store"
)

// Lookup returns the cached result set for (theme, language), favorite-
// stamped, or nil on a miss. Theme matching is case-insensitive.
func (l *Library) Lookup(theme string, lang quote.Language) []quote.Quote {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.cache[cacheKey(theme, lang)]
	if !ok {
		return nil
	}
	return l.stamped(entry.Quotes)
}

// RecordSearch writes the cache entry for (theme, language) and upserts the
// paired history entry: any prior entry for the same pair is removed, the new
// one is prepended with a fresh id and timestamp, and the list is truncated
// to MaxHistoryEntries. Cache and history are persisted together before
// returning, so the caller never observes a half-updated pair. The recorded
// quotes become the active result set.
func (l *Library) RecordSearch(theme string, lang quote.Language, quotes []quote.Quote) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UnixMilli()
	stamped := l.stamped(quotes)

	key := cacheKey(theme, lang)
	l.cache[key] = store.CacheEntry{Quotes: stamped, Timestamp: now}
	l.store.SetCachedQuotes(l.cache)

	kept := make([]store.HistoryEntry, 0, len(l.history)+1)
	kept = append(kept, store.HistoryEntry{
		ID:        uuid.NewString(),
		Theme:     theme,
		Timestamp: now,
		Language:  lang,
	})
	for _, h := range l.history {
		if cacheKey(h.Theme, h.Language) == key {
			continue
		}
		kept = append(kept, h)
	}
	if len(kept) > MaxHistoryEntries {
		kept = kept[:MaxHistoryEntries]
	}
	l.history = kept
	l.store.SetSearchHistory(l.history)

	l.results = stamped
}

// History returns a copy of the search history, newest first.
func (l *Library) History() []store.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]store.HistoryEntry, len(l.history))
	copy(out, l.history)
	return out
}

// DeleteHistoryEntry removes the history entry with the given id together
// with its paired cache entry, persisting both. Unknown ids are a no-op.
func (l *Library) DeleteHistoryEntry(id string) {
	l.mu.Lock()

	idx := -1
	for i, h := range l.history {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}

	entry := l.history[idx]
	l.history = append(l.history[:idx], l.history[idx+1:]...)
	l.store.SetSearchHistory(l.history)

	delete(l.cache, cacheKey(entry.Theme, entry.Language))
	l.store.SetCachedQuotes(l.cache)

	notifier, lang := l.notifier, l.language
	l.mu.Unlock()

	notifier.Notify(msgHistoryDeleted(lang), NoticeSuccess)
}
