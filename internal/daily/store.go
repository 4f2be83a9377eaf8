package daily

import (
	"context"
	"database/sql"
	"fmt"
)

// Result is one finished round (won or lost).
type Result struct {
	SessionID  string `json:"sessionId"`
	Date       string `json:"date"` // YYYY-MM-DD, UTC
	Difficulty string `json:"difficulty"`
	Mode       string `json:"mode"`
	Daily      bool   `json:"daily"`
	Attempts   int    `json:"attempts"`
	Seconds    int    `json:"seconds"`
	Won        bool   `json:"won"`
}

// Store is the results ledger.
type Store struct{ db *sql.DB }

// NewStore opens dsn, applies migrations and returns the ledger.
func NewStore(dsn string) (*Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// InsertResult records a round. A session id is recorded at most once.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(session_id, date, difficulty, mode, daily, attempts, seconds, won)
VALUES(?,?,?,?,?,?,?,?)`,
		r.SessionID, r.Date, r.Difficulty, r.Mode, r.Daily, r.Attempts, r.Seconds, r.Won,
	)
	return err
}

// AlreadyPlayed reports whether a daily round was finished on date.
func (s *Store) AlreadyPlayed(ctx context.Context, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM results WHERE daily=1 AND date=?",
		date,
	).Scan(&cnt)
	return cnt > 0, err
}

// Summary aggregates every recorded round.
type Summary struct {
	Played       int `json:"played"`
	Won          int `json:"won"`
	BestAttempts int `json:"bestAttempts"` // fewest attempts in a win, 0 if none
	BestSeconds  int `json:"bestSeconds"`  // fastest win, 0 if none
}

// Summary returns totals across all rounds.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `
SELECT COUNT(1),
       COALESCE(SUM(won), 0),
       COALESCE(MIN(CASE WHEN won=1 THEN attempts END), 0),
       COALESCE(MIN(CASE WHEN won=1 THEN seconds END), 0)
FROM results`).Scan(&sum.Played, &sum.Won, &sum.BestAttempts, &sum.BestSeconds)
	return sum, err
}

// LBRow is one daily leaderboard entry.
type LBRow struct {
	SessionID string `json:"sessionId"`
	Attempts  int    `json:"attempts"`
	Seconds   int    `json:"seconds"`
}

// Leaderboard returns the best daily wins for a date:
// fewest seconds, then fewest attempts, then earliest.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, attempts, seconds
FROM results
WHERE daily=1 AND won=1 AND date=?
ORDER BY seconds ASC, attempts ASC, created_at ASC
LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.SessionID, &r.Attempts, &r.Seconds); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
