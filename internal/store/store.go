// Package store is the local persistence layer: a handful of JSON-valued
// records in a sqlite file. Reads degrade to empty defaults on any parse or
// validation failure, and writes are best-effort; callers never see a
// persistence error, they see the in-memory state they already hold.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// Record keys. Values under these keys are JSON documents.
const (
	keySearchHistory = "search_history"
	keyCachedQuotes  = "cached_quotes"
	keyCacheVersion  = "cache_version"
	keyFavorites     = "favorite_quotes"
	keyReflections   = "reflections"
	keyQuoteOfDay    = "quote_of_the_day"
)

// CacheVersion stamps the cached-quotes record. Bump it whenever the guidance
// prompt or response format changes incompatibly; a mismatched stamp discards
// the whole cache on the next read.
const CacheVersion = "1.1"

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// get returns the raw JSON for key, or ok=false when absent or unreadable.
func (s *Store) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Warn("reading record", "key", key, "err", err)
		return "", false
	}
	return value, true
}

// set upserts the raw JSON for key. Failures are logged, not returned.
func (s *Store) set(key, value string) {
	_, err := s.db.Exec(`
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		log.Warn("writing record", "key", key, "err", err)
	}
}

// remove deletes key. Failures are logged, not returned.
func (s *Store) remove(key string) {
	if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		log.Warn("deleting record", "key", key, "err", err)
	}
}

// Stats returns the number of stored records and the store file size.
func (s *Store) Stats(dbPath string) (count int, size int64, err error) {
	if err := s.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting records: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("stat store file: %w", err)
	}
	return count, info.Size(), nil
}
