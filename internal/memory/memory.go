package memory

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the agent's event log and artifact sink, backed by sqlite.
// LogEvent and StoreData are best-effort and never fail the fetch path;
// the inspection methods used by the CLI return real errors.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating memory dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			at      DATETIME NOT NULL,
			message TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_at ON events(at DESC);

		CREATE TABLE IF NOT EXISTS artifacts (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// LogEvent appends a line to the event log.
func (s *Store) LogEvent(msg string) {
	s.writeDB.Exec(`INSERT INTO events (at, message) VALUES (?, ?)`, time.Now(), msg)
}

// StoreData upserts a named artifact. Values that fail to serialize are
// recorded as their string form rather than dropped.
func (s *Store) StoreData(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		data = []byte(fmt.Sprintf("%q", fmt.Sprint(value)))
	}
	s.writeDB.Exec(`
		INSERT INTO artifacts (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(data), time.Now())
}

// RecentEvents returns the newest events first, capped at limit.
func (s *Store) RecentEvents(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.readDB.Query(`SELECT id, at, message FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.At, &e.Message); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetData returns the raw JSON value of one artifact.
func (s *Store) GetData(key string) (string, error) {
	var value string
	err := s.readDB.QueryRow(`SELECT value FROM artifacts WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no artifact %q", key)
	}
	if err != nil {
		return "", fmt.Errorf("reading artifact %q: %w", key, err)
	}
	return value, nil
}

// Artifacts lists all stored artifacts, most recently updated first.
func (s *Store) Artifacts() ([]Artifact, error) {
	rows, err := s.readDB.Query(`SELECT key, value, updated_at FROM artifacts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []Artifact
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.Key, &a.Value, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

// Prune deletes events older than the retention window and returns how
// many were removed. Artifacts are kept; they are single-slot upserts.
func (s *Store) Prune(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res, err := s.writeDB.Exec(`DELETE FROM events WHERE at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning events: %w", err)
	}
	return res.RowsAffected()
}

// Stats reports event/artifact counts and the db file size.
func (s *Store) Stats(dbPath string) (events int64, artifacts int64, size int64, err error) {
	if err = s.readDB.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&events); err != nil {
		return 0, 0, 0, fmt.Errorf("counting events: %w", err)
	}
	if err = s.readDB.QueryRow(`SELECT COUNT(*) FROM artifacts`).Scan(&artifacts); err != nil {
		return 0, 0, 0, fmt.Errorf("counting artifacts: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return events, artifacts, 0, fmt.Errorf("reading db size: %w", err)
	}
	return events, artifacts, info.Size(), nil
}
