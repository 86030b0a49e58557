// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/antcolony/matrix"
)

// MinCities is the smallest city count a Field accepts.
const MinCities = 2

// Field is an immutable N×N distance matrix in flat row-major order.
// The zero value is not usable; build one with New, FromRows, Generate or Read.
type Field struct {
	n    int
	data []float64 // len == n*n, offset = i*n + j
}

// New validates m and returns a Field holding a private copy of it.
//
// Errors:
//   - ErrTooFewCities when m has fewer than MinCities rows.
//   - ErrMalformedMatrix (wrapping matrix.ErrNonSquare/ErrNilMatrix) for a bad shape.
//   - ErrInvalidDistance (wrapping the matrix sentinel) for a bad value.
//
// Complexity: O(n²) time and space.
func New(m *matrix.Dense) (*Field, error) {
	if m == nil {
		return nil, fmt.Errorf("distance.New: %w: %w", ErrMalformedMatrix, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("distance.New: %w: %w", ErrMalformedMatrix, err)
	}
	n := m.Rows()
	if n < MinCities {
		return nil, fmt.Errorf("distance.New: n=%d: %w", n, ErrTooFewCities)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, fmt.Errorf("distance.New: %w: %w", ErrInvalidDistance, err)
	}
	if err := matrix.ValidateZeroDiagonal(m); err != nil {
		return nil, fmt.Errorf("distance.New: %w: %w", ErrInvalidDistance, err)
	}

	f := &Field{n: n, data: make([]float64, n*n)}
	var bad error
	m.Do(func(i, j int, v float64) bool {
		if i != j && v == 0 {
			bad = fmt.Errorf("distance.New: zero cost at (%d,%d): %w", i, j, ErrInvalidDistance)
			return false
		}
		f.data[i*n+j] = v
		return true
	})
	if bad != nil {
		return nil, bad
	}

	return f, nil
}

// FromRows builds a Field from literal rows. The input is copied.
//
// Errors: ErrMalformedMatrix for empty or ragged input, otherwise as New.
func FromRows(rows [][]float64) (*Field, error) {
	m, err := matrix.NewFromRows(rows)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, fmt.Errorf("distance.FromRows: %w: %w", ErrInvalidDistance, err)
	}
	if err != nil {
		return nil, fmt.Errorf("distance.FromRows: %w: %w", ErrMalformedMatrix, err)
	}
	if len(rows) != len(rows[0]) {
		return nil, fmt.Errorf("distance.FromRows: %d rows of %d: %w", len(rows), len(rows[0]), ErrMalformedMatrix)
	}

	return New(m)
}

// N returns the number of cities.
func (f *Field) N() int { return f.n }

// At returns the cost of travelling from city i to city j.
// Indices must lie in [0, N); callers in this module only pass validated cities.
// Complexity: O(1).
func (f *Field) At(i, j int) float64 { return f.data[i*f.n+j] }

// Row returns a copy of the costs leaving city i.
func (f *Field) Row(i int) []float64 {
	out := make([]float64, f.n)
	copy(out, f.data[i*f.n:(i+1)*f.n])

	return out
}

// Dense returns the field as a fresh matrix.Dense the caller may mutate freely.
// Complexity: O(n²).
func (f *Field) Dense() *matrix.Dense {
	m, _ := matrix.NewDense(f.n, f.n) // n ≥ MinCities, cannot fail
	_ = m.Apply(func(i, j int, _ float64) float64 { return f.data[i*f.n+j] })

	return m
}

// Preview renders the top-left k×k block, one row per line, each value
// right-aligned in a four-character column followed by a space.
// k is clipped to [0, N].
func (f *Field) Preview(k int) string {
	if k > f.n {
		k = f.n
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			fmt.Fprintf(&b, "%4s ", strconv.FormatFloat(f.data[i*f.n+j], 'f', -1, 64))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
