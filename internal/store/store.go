// Package store persists finished transcripts in a local SQLite database
// and serves the recent-transcriptions history.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Transcript is one delivered transcription.
type Transcript struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}

// Store wraps the SQLite transcript database.
type Store struct {
	db    *sql.DB
	clock func() time.Time
}

// Open opens (and if needed creates) the transcript database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create data dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping sqlite: %w", err)
	}

	s := &Store{db: db, clock: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	ddl := `
CREATE TABLE IF NOT EXISTS transcripts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcripts_created_at ON transcripts(created_at DESC);
`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("store: init schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a transcript and returns its id.
func (s *Store) Save(text string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO transcripts (text, created_at) VALUES (?, ?)`,
		text, s.clock().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert transcript: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to n transcripts, newest first.
func (s *Store) Recent(n int) ([]Transcript, error) {
	rows, err := s.db.Query(`
		SELECT id, text, created_at
		FROM transcripts
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("store: query recent: %w", err)
	}
	defer rows.Close()

	var out []Transcript
	for rows.Next() {
		var tr Transcript
		var createdAt int64
		if err := rows.Scan(&tr.ID, &tr.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("store: scan transcript: %w", err)
		}
		tr.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, tr)
	}
	return out, rows.Err()
}

// Count returns the total number of stored transcripts.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM transcripts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count transcripts: %w", err)
	}
	return n, nil
}
