package internal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoSnapshot is returned when no snapshot exists under the requested name.
var ErrNoSnapshot = errors.New("no snapshot")

// SnapshotStore keeps the last successfully fetched listings in a local
// SQLite database so commands can re-display them offline. It is written only
// by CLI commands after a successful fetch; the request core never reads it,
// so every online call still hits the network.
type SnapshotStore struct {
	db *sql.DB
}

// OpenSnapshotStore opens (creating if needed) the snapshot database at path.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		name     TEXT PRIMARY KEY,
		payload  TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Save stores v as the snapshot under name, replacing any prior one.
func (s *SnapshotStore) Save(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (name, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		name, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load decodes the snapshot under name into v and reports when it was saved.
// Returns ErrNoSnapshot if none exists.
func (s *SnapshotStore) Load(name string, v any) (time.Time, error) {
	var payload, savedAt string
	err := s.db.QueryRow(`SELECT payload, saved_at FROM snapshots WHERE name = ?`, name).
		Scan(&payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		ts = time.Time{}
	}
	return ts, nil
}

// Delete removes the snapshot under name. Deleting a missing snapshot is a
// no-op.
func (s *SnapshotStore) Delete(name string) error {
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE name = ?`, name)
	return err
}

// Close releases the underlying database.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
