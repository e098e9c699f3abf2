// Package store persists the goalweek records in a SQLite-backed
// key-value table. Each record (goals, sessions, view state) is one row
// holding a JSON document; a missing or corrupt row falls back to the
// caller's default so one bad record never blocks the others.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/goalweek/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Record keys. One row per key, overwritten unconditionally on save.
const (
	keyGoals    = "goals"
	keySessions = "sessions"
	keyState    = "state"
)

// Store is the persistent key-value store for all goalweek state.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG data path for the database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "goalweek", "goalweek.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "goalweek", "goalweek.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// load unmarshals the value stored under key into dest. Returns false when
// the row is absent or the stored value does not parse; dest is left
// untouched so the caller's default survives.
func (s *Store) load(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

// save serializes v and overwrites the row for key (last-writer-wins).
func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO records (key, value, saved_at) VALUES (?, ?, ?)`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// LoadGoals returns the stored goal collection, or an empty one.
func (s *Store) LoadGoals() []model.Goal {
	var goals []model.Goal
	if !s.load(keyGoals, &goals) || goals == nil {
		return []model.Goal{}
	}
	return goals
}

// SaveGoals overwrites the stored goal collection.
func (s *Store) SaveGoals(goals []model.Goal) error {
	return s.save(keyGoals, goals)
}

// LoadSessions returns the stored session collection, or an empty one.
func (s *Store) LoadSessions() []model.Session {
	var sessions []model.Session
	if !s.load(keySessions, &sessions) || sessions == nil {
		return []model.Session{}
	}
	return sessions
}

// SaveSessions overwrites the stored session collection.
func (s *Store) SaveSessions(sessions []model.Session) error {
	return s.save(keySessions, sessions)
}

// LoadState returns the stored view state. The zero ViewState (empty
// ViewDate) is returned when nothing usable is stored; the tracker
// substitutes today.
func (s *Store) LoadState() model.ViewState {
	var st model.ViewState
	s.load(keyState, &st)
	return st
}

// SaveState overwrites the stored view state.
func (s *Store) SaveState(st model.ViewState) error {
	return s.save(keyState, st)
}

// CorruptRecords returns the keys of stored records that exist but do not
// parse. Loads silently fall back to defaults for these; `goalweek config`
// surfaces them for manual inspection.
func (s *Store) CorruptRecords() []string {
	var bad []string
	for _, key := range []string{keyGoals, keySessions, keyState} {
		var raw string
		err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&raw)
		if errors.Is(err, sql.ErrNoRows) || err != nil {
			continue
		}
		if !json.Valid([]byte(raw)) {
			bad = append(bad, key)
		}
	}
	return bad
}
