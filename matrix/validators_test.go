// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"2x2", mustRows(t, [][]float64{{0, 1}, {1, 0}}), nil},
		{"2x3", mustRows(t, [][]float64{{0, 1, 2}, {1, 0, 2}}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateOrder rejects square matrices of the wrong order.
func TestValidateOrder(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, matrix.ValidateOrder(m, 2))
	require.ErrorIs(t, matrix.ValidateOrder(m, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateOrder(nil, 3), matrix.ErrNilMatrix)
}

// TestValidateNonNegative rejects the first negative cell.
func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateNonNegative(mustRows(t, [][]float64{{0, 1}, {2, 0}})))

	err := matrix.ValidateNonNegative(mustRows(t, [][]float64{{0, 1}, {-2, 0}}))
	require.ErrorIs(t, err, matrix.ErrNegative)
	require.Contains(t, err.Error(), "(1,0)")
}

// TestValidateZeroDiagonal requires exact zeros on the main diagonal.
func TestValidateZeroDiagonal(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateZeroDiagonal(mustRows(t, [][]float64{{0, 5}, {5, 0}})))
	require.ErrorIs(t,
		matrix.ValidateZeroDiagonal(mustRows(t, [][]float64{{0, 5}, {5, 1e-12}})),
		matrix.ErrNonZeroDiagonal)
	require.ErrorIs(t,
		matrix.ValidateZeroDiagonal(mustRows(t, [][]float64{{0, 5, 1}})),
		matrix.ErrNonSquare)
}
