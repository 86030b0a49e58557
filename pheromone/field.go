// SPDX-License-Identifier: MIT

package pheromone

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// Field is an N×N pheromone matrix backed by a matrix.Dense.
// It is not safe for concurrent mutation; concurrent reads are fine while no
// update is in progress.
type Field struct {
	n int
	m *matrix.Dense
}

// New returns an n×n field with every cell set to tau0.
//
// Errors:
//   - ErrDimensionMismatch when n < 1.
//   - ErrInvalidLevel when tau0 ≤ 0 or not finite.
//
// Complexity: O(n²).
func New(n int, tau0 float64) (*Field, error) {
	if n < 1 {
		return nil, fmt.Errorf("pheromone.New: n=%d: %w", n, ErrDimensionMismatch)
	}
	if !(tau0 > 0) || math.IsInf(tau0, 0) {
		return nil, fmt.Errorf("pheromone.New: tau0=%v: %w", tau0, ErrInvalidLevel)
	}
	m, err := matrix.NewFilled(n, n, tau0)
	if err != nil {
		return nil, fmt.Errorf("pheromone.New: %w", err)
	}

	return &Field{n: n, m: m}, nil
}

// FromMatrix builds a field from an existing matrix (warm start). The matrix
// is copied. Zero cells are allowed; negative cells are not.
//
// Errors: ErrDimensionMismatch for a non-square or nil matrix, ErrInvalidLevel
// for negative cells.
func FromMatrix(m *matrix.Dense) (*Field, error) {
	if m == nil {
		return nil, fmt.Errorf("pheromone.FromMatrix: %w: %w", ErrDimensionMismatch, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("pheromone.FromMatrix: %w: %w", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, fmt.Errorf("pheromone.FromMatrix: %w: %w", ErrInvalidLevel, err)
	}

	return &Field{n: m.Rows(), m: m.CloneDense()}, nil
}

// N returns the field order.
func (f *Field) N() int { return f.n }

// At returns τ[i][j]. Out-of-range indices yield 0.
// Complexity: O(1).
func (f *Field) At(i, j int) float64 {
	v, err := f.m.At(i, j)
	if err != nil {
		return 0
	}

	return v
}

// Evaporate multiplies every cell by (1-rho) in place.
// Evaporate(0) leaves the field bit-identical; Evaporate(1) zeroes it.
//
// Errors: ErrInvalidRate when rho ∉ [0,1] (field unchanged).
// Complexity: O(n²).
func (f *Field) Evaporate(rho float64) error {
	if !(rho >= 0 && rho <= 1) {
		return fmt.Errorf("pheromone.Evaporate: rho=%v: %w", rho, ErrInvalidRate)
	}
	if rho == 0 {
		return nil
	}
	if err := f.m.Scale(1 - rho); err != nil {
		return fmt.Errorf("pheromone.Evaporate: %w", err)
	}

	return nil
}

// Deposit adds amount to the directed cell (i, j) only.
//
// Errors:
//   - ErrInvalidAmount for a negative or non-finite amount, or an overflowing sum.
//   - ErrDimensionMismatch for indices outside [0, N).
//
// Complexity: O(1).
func (f *Field) Deposit(i, j int, amount float64) error {
	if !(amount >= 0) || math.IsInf(amount, 0) {
		return fmt.Errorf("pheromone.Deposit(%d,%d): amount=%v: %w", i, j, amount, ErrInvalidAmount)
	}
	if err := f.m.AddAt(i, j, amount); err != nil {
		if i < 0 || j < 0 || i >= f.n || j >= f.n {
			return fmt.Errorf("pheromone.Deposit: %w: %w", ErrDimensionMismatch, err)
		}
		return fmt.Errorf("pheromone.Deposit: %w: %w", ErrInvalidAmount, err)
	}

	return nil
}

// DepositTour adds amount to every directed edge of the closed tour
// t[0]→t[1]→…→t[k-1]→t[0]. A tour of length < 2 deposits nothing.
// The tour is not checked for being a permutation.
//
// Errors: as Deposit; edges before the failing one stay deposited.
// Complexity: O(len(t)).
func (f *Field) DepositTour(t []int, amount float64) error {
	k := len(t)
	if k < 2 {
		return nil
	}
	var i int
	for i = 0; i < k; i++ {
		if err := f.Deposit(t[i], t[(i+1)%k], amount); err != nil {
			return err
		}
	}

	return nil
}

// Snapshot returns an independent copy of the field as a matrix.Dense.
// Complexity: O(n²).
func (f *Field) Snapshot() *matrix.Dense { return f.m.CloneDense() }

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field { return &Field{n: f.n, m: f.m.CloneDense()} }

// Total returns the sum of all cells.
func (f *Field) Total() float64 { return f.m.Sum() }

// Do visits every cell in row-major order; see matrix.Dense.Do.
func (f *Field) Do(fn func(i, j int, tau float64) bool) { f.m.Do(fn) }
