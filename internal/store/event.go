package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequence hands out one increasing number across every event table, so
// that LLM and session events can be ordered against each other.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequence = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`
	seedSequence = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	bumpSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
)

func newSequence(db *sql.DB) (*sequence, error) {
	for _, stmt := range []string{createSequence, seedSequence} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("prepare sequence: %w", err)
		}
	}
	return &sequence{db: db}, nil
}

// Next returns the current value and advances it. Numbering starts at 1.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if err := s.db.QueryRowContext(ctx, bumpSequence).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
