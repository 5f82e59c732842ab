// Package storage keeps the match ledger: finished matches and per-session
// tallies. The ledger lives in an in-memory SQLite database and is gone when
// the process exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records finished matches.
// It is safe for concurrent use; SSH sessions share one ledger.
type Ledger struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID         string
	SessionID  string // Front-end session that played the match
	Winner     int    // Winning seat: 1 or 2
	WinnerName string
	LoserName  string
	Ticks      uint64
	Duration   time.Duration // Simulated match time
	CreatedAt  time.Time
}

// Tally is the number of wins per seat for one session.
type Tally struct {
	P1      int
	P2      int
	Matches int
}

// ErrInvalidWinner is returned for records whose winner is not seat 1 or 2.
var ErrInvalidWinner = errors.New("storage: winner must be seat 1 or 2")

// OpenLedger creates an empty in-memory ledger.
func OpenLedger() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

// migrate creates the database schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			winner INTEGER NOT NULL CHECK (winner IN (1, 2)),
			winner_name TEXT NOT NULL,
			loser_name TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_session ON matches(session_id, created_at DESC);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordMatch stores a finished match and returns its ID.
// Empty ID and zero CreatedAt are filled in.
func (l *Ledger) RecordMatch(m MatchRecord) (string, error) {
	if m.Winner != 1 && m.Winner != 2 {
		return "", ErrInvalidWinner
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	_, err := l.db.Exec(
		`INSERT INTO matches
		 (id, session_id, winner, winner_name, loser_name, ticks, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.SessionID,
		m.Winner,
		m.WinnerName,
		m.LoserName,
		int64(m.Ticks),
		m.Duration.Milliseconds(),
		m.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record match: %w", err)
	}
	return m.ID, nil
}

// Recent returns the latest matches of a session, newest first.
// An empty sessionID lists matches of every session.
func (l *Ledger) Recent(sessionID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, session_id, winner, winner_name, loser_name, ticks, duration_ms, created_at
		 FROM matches
		 WHERE ? = '' OR session_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		sessionID, sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var (
			m          MatchRecord
			ticks      int64
			durationMS int64
			createdAt  int64
		)
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Winner, &m.WinnerName, &m.LoserName,
			&ticks, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Ticks = uint64(ticks)
		m.Duration = time.Duration(durationMS) * time.Millisecond
		m.CreatedAt = time.UnixMilli(createdAt)
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Tally counts the wins per seat recorded for a session.
func (l *Ledger) Tally(sessionID string) (Tally, error) {
	var t Tally
	err := l.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0)
		 FROM matches WHERE session_id = ?`,
		sessionID,
	).Scan(&t.Matches, &t.P1, &t.P2)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	return t, nil
}

// ClearSession deletes every match of a session.
func (l *Ledger) ClearSession(sessionID string) error {
	_, err := l.db.Exec("DELETE FROM matches WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
}
