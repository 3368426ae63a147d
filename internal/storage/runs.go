package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run outcomes.
const (
	OutcomeLost = "lost"
	OutcomeQuit = "quit"
)

// ErrRunNotFound is returned by RunByID for unknown IDs.
var ErrRunNotFound = errors.New("storage: run not found")

// Run is the record of one finished attempt. Seed and the input log are
// enough to replay it; only the seed is kept here.
type Run struct {
	RunID     string
	Mode      string
	Seed      int64
	Level     int
	FillPct   float64
	Score     int
	Ticks     uint64
	Outcome   string
	CreatedAt time.Time
}

// SaveRun records a finished run. RunID must be a UUID.
func (s *Store) SaveRun(run Run) error {
	if _, err := uuid.Parse(run.RunID); err != nil {
		return fmt.Errorf("storage: invalid run id %q: %w", run.RunID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, mode, seed, level, fill_pct, score, ticks, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Mode,
		run.Seed,
		run.Level,
		run.FillPct,
		run.Score,
		int64(run.Ticks),
		run.Outcome,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

const runColumns = `run_id, mode, seed, level, fill_pct, score, ticks, outcome, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var ticks int64
	var createdAt any
	err := row.Scan(
		&r.RunID,
		&r.Mode,
		&r.Seed,
		&r.Level,
		&r.FillPct,
		&r.Score,
		&ticks,
		&r.Outcome,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// RunByID retrieves one run. Returns ErrRunNotFound for unknown IDs.
func (s *Store) RunByID(runID string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the latest runs, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
