// Package store persists calculator registers and REPL history across
// process runs, backed by modernc.org/sqlite (pure Go, no cgo) through
// database/sql. Values are stored as their base-10 num.Print text, not
// the internal cell representation, so the schema never needs to know
// about internal/num's layout.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"bcnum/internal/num"
)

const schema = `
CREATE TABLE IF NOT EXISTS registers (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	scale      INTEGER NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS history (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	input      TEXT NOT NULL,
	output     TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

// Store wraps a *sql.DB open against a SQLite file (or ":memory:")
// holding the registers and history tables.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // modernc.org/sqlite: one writer at a time
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// HistoryEntry is one persisted REPL line.
type HistoryEntry struct {
	ID        string
	SessionID string
	Input     string
	Output    string
	CreatedAt time.Time
}

// Get loads a register by name into a fresh *num.Number, reporting
// false if it has never been set.
func (s *Store) Get(name string) (*num.Number, bool) {
	var text string
	var scale int
	row := s.db.QueryRow(`SELECT value, scale FROM registers WHERE name = ?`, name)
	if err := row.Scan(&text, &scale); err != nil {
		return nil, false
	}
	n := num.New()
	if status := num.ParseDecimal(n, text); status != num.Ok {
		return nil, false
	}
	return n, true
}

// Set persists value under name, overwriting any prior value.
func (s *Store) Set(name string, value *num.Number) {
	var sb numStringer
	num.PrintDecimal(value, &sb, nil)
	_, _ = s.db.Exec(
		`INSERT INTO registers(name, value, scale, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, scale = excluded.scale, updated_at = excluded.updated_at`,
		name, sb.String(), value.Scale(), nowFunc(),
	)
}

// AppendHistory records one evaluated REPL line under sessionID,
// returning its generated row ID.
func (s *Store) AppendHistory(ctx context.Context, sessionID, input, output string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history(id, session_id, input, output, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, sessionID, input, output, nowFunc(),
	)
	if err != nil {
		return "", fmt.Errorf("store: append history: %w", err)
	}
	return id, nil
}

// History returns every history row for sessionID, oldest first. An
// empty sessionID returns every row across all sessions.
func (s *Store) History(ctx context.Context, sessionID string) ([]HistoryEntry, error) {
	var rows *sql.Rows
	var err error
	if sessionID == "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, session_id, input, output, created_at FROM history ORDER BY created_at ASC`)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, session_id, input, output, created_at FROM history WHERE session_id = ? ORDER BY created_at ASC`,
			sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("store: history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Input, &e.Output, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// NewSessionID mints a fresh session identifier for a REPL run.
func NewSessionID() string { return uuid.NewString() }

// numStringer is a minimal num.Sink collecting bytes into a string,
// local to this package so it doesn't need to import internal/num's
// unexported stringSink.
type numStringer struct{ b []byte }

func (s *numStringer) PutChar(c byte) { s.b = append(s.b, c) }
func (s *numStringer) String() string { return string(s.b) }

// nowFunc is a var so tests can stub it; production always wants the
// real wall clock.
var nowFunc = time.Now
