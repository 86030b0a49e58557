// SPDX-License-Identifier: MIT

package distance

import "errors"

var (
	// ErrMalformedMatrix is returned when a matrix source has the wrong row or
	// column count, or a field that does not parse as a number.
	ErrMalformedMatrix = errors.New("distance: malformed matrix")

	// ErrInvalidDistance signals a value the field cannot hold: negative,
	// NaN/Inf, a non-zero diagonal or a zero off-diagonal cost.
	ErrInvalidDistance = errors.New("distance: invalid distance value")

	// ErrInvalidBounds signals generator bounds with Low < 1 or High < Low.
	ErrInvalidBounds = errors.New("distance: invalid generator bounds")

	// ErrTooFewCities signals N < 2; a tour needs at least two cities.
	ErrTooFewCities = errors.New("distance: need at least 2 cities")
)
