package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

// RunRecord is one finished run with its statistics.
type RunRecord struct {
	RunID     string
	GameID    string
	SessionID string // SSH session or empty for local play
	Stats     core.RunStats
	CreatedAt time.Time
}

// RunTotals aggregates every run of a game.
type RunTotals struct {
	Runs      int
	BestLevel int
	Pulses    int
	PowerUps  int
	Ticks     int64
}

// SaveRun records a finished run and its score in one transaction.
// Returns the generated run ID.
func (s *Store) SaveRun(gameID, sessionID string, stats core.RunStats) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	_, err = tx.Exec(
		`INSERT INTO runs
		 (run_id, game_id, session_id, score, level, pulses, powerups, passed, ticks, seed, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, gameID, sessionID,
		stats.Score, stats.Level, stats.Pulses, stats.PowerUps, stats.Passed,
		int64(stats.Ticks), stats.Seed, stats.EndReason, //#nosec G115 -- tick counts fit in int64
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, stats.Score); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return runID, nil
}

const runColumns = `run_id, game_id, session_id, score, level, pulses, powerups, passed, ticks, seed, end_reason, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var ticks int64
	var createdAt any
	err := row.Scan(
		&r.RunID, &r.GameID, &r.SessionID,
		&r.Stats.Score, &r.Stats.Level, &r.Stats.Pulses, &r.Stats.PowerUps, &r.Stats.Passed,
		&ticks, &r.Stats.Seed, &r.Stats.EndReason, &createdAt,
	)
	if err != nil {
		return RunRecord{}, err
	}
	if ticks > 0 {
		r.Stats.Ticks = uint64(ticks) //#nosec G115 -- checked non-negative
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID retrieves a run by its ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// GetRunTotals aggregates all runs of a game.
func (s *Store) GetRunTotals(gameID string) (RunTotals, error) {
	var t RunTotals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(level), 0), COALESCE(SUM(pulses), 0),
		        COALESCE(SUM(powerups), 0), COALESCE(SUM(ticks), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&t.Runs, &t.BestLevel, &t.Pulses, &t.PowerUps, &t.Ticks)
	if err != nil {
		return RunTotals{}, fmt.Errorf("storage: cannot get run totals: %w", err)
	}
	return t, nil
}
