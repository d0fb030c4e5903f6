package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run records a completed schedule generation.
type Run struct {
	ID            string
	ShowDate      string
	Seed          int64
	SongCount     int
	TotalOverlays int
	OutputPath    string
	StartedAt     time.Time
	FinishedAt    time.Time
}

// NewRunID returns a fresh identifier for a schedule run.
func NewRunID() string {
	return uuid.NewString()
}

// RecordRun inserts a completed run into the history.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	_, err := s.execWithRetry(ctx,
		`INSERT INTO runs (id, show_date, seed, song_count, total_overlays, output_path, started_at, finished_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.ShowDate,
		run.Seed,
		run.SongCount,
		run.TotalOverlays,
		run.OutputPath,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, show_date, seed, song_count, total_overlays, output_path, started_at, finished_at
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			started  string
			finished string
		)
		if err := rows.Scan(&run.ID, &run.ShowDate, &run.Seed, &run.SongCount,
			&run.TotalOverlays, &run.OutputPath, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// LatestRun returns the most recent run, or nil when the history is empty.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	runs, err := s.RecentRuns(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
