// SPDX-License-Identifier: MIT

package colony

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals a Config that fails Validate.
	ErrInvalidConfig = errors.New("colony: invalid config")

	// ErrSelectionInvariant signals that city selection exhausted every
	// candidate without choosing one. It indicates a broken random source or a
	// programming error and is never retried.
	ErrSelectionInvariant = errors.New("colony: selection invariant violated")

	// ErrDone is returned by Step once the iteration budget is spent.
	ErrDone = errors.New("colony: run already done")

	// ErrDimensionMismatch signals a warm-start field whose order differs from
	// the distance field.
	ErrDimensionMismatch = errors.New("colony: dimension mismatch")
)

// SelectionError carries the state of a failed selection.
// errors.Is(err, ErrSelectionInvariant) reports true for it.
type SelectionError struct {
	City      int     // city the ant was standing on
	Step      int     // number of cities already in the tour
	Remaining int     // unvisited candidates
	Sum       float64 // total attraction over the candidates
	Draw      float64 // sampled threshold r
}

// Error implements error.
func (e *SelectionError) Error() string {
	return fmt.Sprintf("%v: city=%d step=%d remaining=%d sum=%g draw=%g",
		ErrSelectionInvariant, e.City, e.Step, e.Remaining, e.Sum, e.Draw)
}

// Unwrap exposes ErrSelectionInvariant to errors.Is.
func (e *SelectionError) Unwrap() error { return ErrSelectionInvariant }
