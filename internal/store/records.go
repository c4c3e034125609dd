package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

// CacheKey builds the composite key a theme search is cached under:
// lowercased theme plus language.
func CacheKey(theme string, lang quote.Language) string {
	return strings.ToLower(theme) + ":" + string(lang)
}

// HistoryEntry is one past theme search, newest-first in the persisted list.
type HistoryEntry struct {
	ID        string         `json:"id"`
	Theme     string         `json:"theme"`
	Timestamp int64          `json:"timestamp"` // unix milliseconds
	Language  quote.Language `json:"language"`
}

// CacheEntry is the cached result set for one composite theme:language key.
type CacheEntry struct {
	Quotes    []quote.Quote `json:"data"`
	Timestamp int64         `json:"timestamp"` // unix milliseconds
}

// Reflection is the user's journal note for one quote id.
type Reflection struct {
	QuoteID   string `json:"quoteId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// QuoteOfTheDay is the single daily quote record.
type QuoteOfTheDay struct {
	Quote       quote.Quote    `json:"quote"`
	DateFetched string         `json:"dateFetched"` // YYYY-MM-DD
	Language    quote.Language `json:"language"`
}

// SearchHistory returns the persisted search history, or nil when absent or
// malformed. Entries persisted before the language field existed default to
// English rather than being dropped.
func (s *Store) SearchHistory() []HistoryEntry {
	raw, ok := s.get(keySearchHistory)
	if !ok {
		return nil
	}
	var history []HistoryEntry
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.Warn("parsing search history, treating as empty", "err", err)
		return nil
	}
	valid := history[:0]
	for _, h := range history {
		if h.ID == "" || h.Theme == "" {
			log.Warn("dropping malformed history entry", "id", h.ID)
			continue
		}
		if h.Language == "" {
			h.Language = quote.LangEN
		}
		valid = append(valid, h)
	}
	return valid
}

func (s *Store) SetSearchHistory(history []HistoryEntry) {
	s.marshalAndSet(keySearchHistory, history)
}

// CachedQuotes returns the theme:language cache map. A schema-version mismatch
// discards the entire cache and rewrites the stamp.
func (s *Store) CachedQuotes() map[string]CacheEntry {
	if version, _ := s.get(keyCacheVersion); version != CacheVersion {
		log.Info("cache version mismatch, clearing cache", "stored", version, "running", CacheVersion)
		s.remove(keyCachedQuotes)
		s.set(keyCacheVersion, CacheVersion)
		return map[string]CacheEntry{}
	}

	raw, ok := s.get(keyCachedQuotes)
	if !ok {
		return map[string]CacheEntry{}
	}
	var cache map[string]CacheEntry
	if err := json.Unmarshal([]byte(raw), &cache); err != nil {
		log.Warn("parsing quote cache, treating as empty", "err", err)
		return map[string]CacheEntry{}
	}
	if cache == nil {
		cache = map[string]CacheEntry{}
	}
	return cache
}

func (s *Store) SetCachedQuotes(cache map[string]CacheEntry) {
	s.marshalAndSet(keyCachedQuotes, cache)
	s.set(keyCacheVersion, CacheVersion)
}

// FavoriteQuotes returns the persisted favorites with IsFavorite stamped true;
// membership in this list is the sole durable source of that flag.
func (s *Store) FavoriteQuotes() []quote.Quote {
	raw, ok := s.get(keyFavorites)
	if !ok {
		return nil
	}
	var favorites []quote.Quote
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		log.Warn("parsing favorites, treating as empty", "err", err)
		return nil
	}
	valid := favorites[:0]
	for _, q := range favorites {
		if q.ID == "" || q.Text == "" {
			log.Warn("dropping malformed favorite", "id", q.ID)
			continue
		}
		q.IsFavorite = true
		valid = append(valid, q)
	}
	return valid
}

// SetFavoriteQuotes persists the list. The flag itself is not stored; it is
// implicit for every member.
func (s *Store) SetFavoriteQuotes(favorites []quote.Quote) {
	stripped := make([]quote.Quote, len(favorites))
	for i, q := range favorites {
		q.IsFavorite = false
		stripped[i] = q
	}
	s.marshalAndSet(keyFavorites, stripped)
}

// Reflections returns the quote-id keyed reflection map, dropping malformed
// entries individually rather than discarding the record.
func (s *Store) Reflections() map[string]Reflection {
	raw, ok := s.get(keyReflections)
	if !ok {
		return map[string]Reflection{}
	}
	var reflections map[string]Reflection
	if err := json.Unmarshal([]byte(raw), &reflections); err != nil {
		log.Warn("parsing reflections, treating as empty", "err", err)
		return map[string]Reflection{}
	}
	for key, r := range reflections {
		if r.QuoteID == "" {
			log.Warn("dropping malformed reflection", "key", key)
			delete(reflections, key)
		}
	}
	if reflections == nil {
		reflections = map[string]Reflection{}
	}
	return reflections
}

func (s *Store) SetReflections(reflections map[string]Reflection) {
	s.marshalAndSet(keyReflections, reflections)
}

// QuoteOfTheDay returns the stored daily quote, or nil unless it carries a
// valid language tag and a quote with an id. Invalid records are deleted.
func (s *Store) QuoteOfTheDay() *QuoteOfTheDay {
	raw, ok := s.get(keyQuoteOfDay)
	if !ok {
		return nil
	}
	var qotd QuoteOfTheDay
	if err := json.Unmarshal([]byte(raw), &qotd); err != nil {
		log.Warn("parsing quote of the day, treating as absent", "err", err)
		return nil
	}
	if qotd.Quote.ID == "" || qotd.DateFetched == "" || !qotd.Language.Valid() {
		log.Warn("stored quote of the day is invalid, discarding")
		s.remove(keyQuoteOfDay)
		return nil
	}
	return &qotd
}

func (s *Store) SetQuoteOfTheDay(qotd QuoteOfTheDay) {
	if qotd.Quote.ID == "" || qotd.DateFetched == "" || !qotd.Language.Valid() {
		log.Error("refusing to store invalid quote of the day", "date", qotd.DateFetched, "lang", qotd.Language)
		return
	}
	s.marshalAndSet(keyQuoteOfDay, qotd)
}

// DeleteHistoryEntry removes a history entry and the cache entry its search
// produced. Returns false when the id is unknown.
func (s *Store) DeleteHistoryEntry(id string) bool {
	history := s.SearchHistory()
	idx := -1
	for i, h := range history {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	entry := history[idx]
	s.SetSearchHistory(append(history[:idx], history[idx+1:]...))

	cache := s.CachedQuotes()
	if _, ok := cache[CacheKey(entry.Theme, entry.Language)]; ok {
		delete(cache, CacheKey(entry.Theme, entry.Language))
		s.SetCachedQuotes(cache)
	}
	return true
}

// Prune removes cache entries and history entries older than maxAge, keeping
// the pair in step. Returns how many of each were removed.
func (s *Store) Prune(maxAge time.Duration) (cacheRemoved, historyRemoved int) {
	cutoff := time.Now().Add(-maxAge).UnixMilli()

	cache := s.CachedQuotes()
	for key, entry := range cache {
		if entry.Timestamp < cutoff {
			delete(cache, key)
			cacheRemoved++
		}
	}
	if cacheRemoved > 0 {
		s.SetCachedQuotes(cache)
	}

	history := s.SearchHistory()
	kept := history[:0]
	for _, h := range history {
		if h.Timestamp < cutoff {
			historyRemoved++
			continue
		}
		kept = append(kept, h)
	}
	if historyRemoved > 0 {
		s.SetSearchHistory(kept)
	}
	return cacheRemoved, historyRemoved
}

func (s *Store) marshalAndSet(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("serializing record", "key", key, "err", err)
		return
	}
	s.set(key, string(data))
}
