// Package store persists the user's profile, progression state, active plan,
// and session-event log in a single-user SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open creates a Store backed by the SQLite database at path, applying
// recommended pragmas and running migration.
func Open(path string) (*Store, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profile (
		id                 INTEGER PRIMARY KEY CHECK (id = 1),
		joint              TEXT NOT NULL,
		level              INTEGER NOT NULL,
		irritability       TEXT NOT NULL,
		rehab_days         INTEGER NOT NULL,
		circulation_days   INTEGER NOT NULL,
		activity           TEXT NOT NULL,
		focus_areas        TEXT NOT NULL,
		catalog_version    INTEGER NOT NULL,
		assessed_at        TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS progression_state (
		id                  INTEGER PRIMARY KEY CHECK (id = 1),
		current_phase       INTEGER NOT NULL,
		experience_points   INTEGER NOT NULL,
		level_maxed_out     INTEGER NOT NULL,
		consecutive_perfect INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercise_progress (
		exercise_id  TEXT PRIMARY KEY,
		history      TEXT NOT NULL,
		sets         INTEGER NOT NULL,
		reps         INTEGER NOT NULL,
		hold_seconds INTEGER NOT NULL,
		phase_index  INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS active_plan (
		position    INTEGER PRIMARY KEY,
		exercise_id TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_events (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id   TEXT NOT NULL,
		session_type TEXT NOT NULL,
		exertion     TEXT NOT NULL,
		pain_score   INTEGER NOT NULL,
		xp_earned    INTEGER NOT NULL,
		upgrades     INTEGER NOT NULL,
		level_maxed  INTEGER NOT NULL,
		message      TEXT NOT NULL,
		created_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_session_events_created ON session_events(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Reset clears all stored state.
func (s *Store) Reset() error {
	for _, table := range []string{"profile", "progression_state", "exercise_progress", "active_plan", "session_events"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KURERA_DB environment variable
// 2. $XDG_DATA_HOME/kurera/kurera.db
// 3. ~/.local/share/kurera/kurera.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KURERA_DB"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "kurera", "kurera.db"), nil
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
