// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/tour"
)

// Run is a stored colony run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Matrix    string // name of the matrix the run used, may be empty
	Config    colony.Config
	Report    colony.Report
}

// RunSummary is a Run without its iteration records.
type RunSummary struct {
	ID         string
	CreatedAt  time.Time
	Matrix     string
	Cities     int
	Ants       int
	Iterations int
	BestLength float64
	Completed  bool
}

// SaveRun stores cfg and rep under a fresh UUID and returns that id.
// matrixName links the run to a stored matrix and may be empty.
func (s *Store) SaveRun(ctx context.Context, cfg colony.Config, rep *colony.Report, matrixName string) (string, error) {
	if rep == nil {
		return "", errors.New("store: nil report")
	}
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (id, created_at, matrix, cities, ants, iterations, alpha, beta, rho, tau0,
			                  seed, workers, best_length, best_tour, best_iteration, degenerate, elapsed_ms, completed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, s.now().UTC().Format(time.RFC3339Nano), matrixName, rep.Cities, cfg.Ants, cfg.Iterations,
			cfg.Alpha, cfg.Beta, cfg.Rho, cfg.Tau0, cfg.Seed, cfg.Workers,
			rep.Best.Length, encodeTour(rep.Best.Tour), rep.Best.Iteration, rep.Degenerate,
			rep.Elapsed.Milliseconds(), rep.Completed)
		if err != nil {
			return fmt.Errorf("store: insert run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO iterations (run_id, iteration, best_length, iteration_best, mean, std_dev, worst, degenerate, improved)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("store: prepare iterations: %w", err)
		}
		defer stmt.Close()

		for _, rec := range rep.Iterations {
			if _, err = stmt.ExecContext(ctx, id, rec.Iteration, rec.BestLength, rec.IterationBest,
				rec.Mean, rec.StdDev, rec.Worst, rec.Degenerate, rec.Improved); err != nil {
				return fmt.Errorf("store: insert iteration %d: %w", rec.Iteration, err)
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// GetRun loads a run with all of its iteration records.
//
// Errors: ErrRunNotFound for an unknown id.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		run       = Run{ID: id}
		created   string
		tourText  string
		elapsedMs int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT created_at, matrix, cities, ants, iterations, alpha, beta, rho, tau0, seed, workers,
		       best_length, best_tour, best_iteration, degenerate, elapsed_ms, completed
		FROM runs WHERE id = ?`, id).Scan(
		&created, &run.Matrix, &run.Report.Cities, &run.Config.Ants, &run.Config.Iterations,
		&run.Config.Alpha, &run.Config.Beta, &run.Config.Rho, &run.Config.Tau0, &run.Config.Seed, &run.Config.Workers,
		&run.Report.Best.Length, &tourText, &run.Report.Best.Iteration, &run.Report.Degenerate,
		&elapsedMs, &run.Report.Completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get run %s: %w", id, err)
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("store: run %s created_at: %w", id, err)
	}
	if run.Report.Best.Tour, err = decodeTour(tourText); err != nil {
		return nil, fmt.Errorf("store: run %s: %w", id, err)
	}
	run.Report.Ants = run.Config.Ants
	run.Report.Elapsed = time.Duration(elapsedMs) * time.Millisecond

	rows, err := s.db.QueryContext(ctx, `
		SELECT iteration, best_length, iteration_best, mean, std_dev, worst, degenerate, improved
		FROM iterations WHERE run_id = ? ORDER BY iteration`, id)
	if err != nil {
		return nil, fmt.Errorf("store: get iterations %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec colony.IterationRecord
		if err = rows.Scan(&rec.Iteration, &rec.BestLength, &rec.IterationBest, &rec.Mean,
			&rec.StdDev, &rec.Worst, &rec.Degenerate, &rec.Improved); err != nil {
			return nil, fmt.Errorf("store: scan iteration: %w", err)
		}
		run.Report.Iterations = append(run.Report.Iterations, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: get iterations %s: %w", id, err)
	}

	return &run, nil
}

// ListRuns returns up to limit runs, newest first. limit ≤ 0 means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, matrix, cities, ants, iterations, best_length, completed
		FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			r       RunSummary
			created string
		)
		if err = rows.Scan(&r.ID, &created, &r.Matrix, &r.Cities, &r.Ants, &r.Iterations, &r.BestLength, &r.Completed); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("store: run %s created_at: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}

	return out, nil
}

// encodeTour stores a tour as comma-separated city indices.
func encodeTour(t tour.Tour) string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, ",")
}

func decodeTour(s string) (tour.Tour, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	t := make(tour.Tour, len(parts))
	var err error
	for i, p := range parts {
		if t[i], err = strconv.Atoi(p); err != nil {
			return nil, fmt.Errorf("decode tour: %w", err)
		}
	}

	return t, nil
}
