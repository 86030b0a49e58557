// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/matrix"
)

// SaveMatrix stores f under name, replacing any matrix with that name.
func (s *Store) SaveMatrix(ctx context.Context, name string, f *distance.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM matrix_cells WHERE matrix = ?`, name); err != nil {
			return fmt.Errorf("store: clear matrix %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO matrices (name, n, created_at) VALUES (?, ?, ?)`,
			name, f.N(), s.now().UTC().Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("store: save matrix %q: %w", name, err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO matrix_cells (matrix, i, j, v) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("store: prepare cells: %w", err)
		}
		defer stmt.Close()

		n := f.N()
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if _, err = stmt.ExecContext(ctx, name, i, j, f.At(i, j)); err != nil {
					return fmt.Errorf("store: save cell (%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	})
}

// LoadMatrix returns the matrix stored under name.
//
// Errors: ErrMatrixNotFound; distance.ErrMalformedMatrix when stored cells are
// missing or out of range.
func (s *Store) LoadMatrix(ctx context.Context, name string) (*distance.Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT n FROM matrices WHERE name = ?`, name).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: %q: %w", name, ErrMatrixNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load matrix %q: %w", name, err)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("store: matrix %q: %w: %w", name, distance.ErrMalformedMatrix, err)
	}
	rows, err := s.db.QueryContext(ctx, `SELECT i, j, v FROM matrix_cells WHERE matrix = ?`, name)
	if err != nil {
		return nil, fmt.Errorf("store: load cells %q: %w", name, err)
	}
	defer rows.Close()

	var (
		i, j  int
		v     float64
		count int
	)
	for rows.Next() {
		if err = rows.Scan(&i, &j, &v); err != nil {
			return nil, fmt.Errorf("store: scan cell: %w", err)
		}
		if err = m.Set(i, j, v); err != nil {
			return nil, fmt.Errorf("store: matrix %q: %w: %w", name, distance.ErrMalformedMatrix, err)
		}
		count++
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load cells %q: %w", name, err)
	}
	if count != n*n {
		return nil, fmt.Errorf("store: matrix %q has %d cells, want %d: %w", name, count, n*n, distance.ErrMalformedMatrix)
	}

	return distance.New(m)
}
