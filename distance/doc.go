// SPDX-License-Identifier: MIT

// Package distance holds the immutable N×N cost matrix an ant colony routes over.
//
// What & Why:
//
//	A Field is a flat row-major copy of a validated matrix.Dense. Every entry is
//	finite and non-negative, the diagonal is exactly zero and every off-diagonal
//	entry is strictly positive, so 1/d is always defined for the heuristic term.
//	Symmetry is NOT required; At(i,j) and At(j,i) are independent.
//
// Construction paths:
//
//   - New / FromRows: wrap caller-supplied data (copied, never aliased).
//   - Generate: uniform integer costs in [Low, High] for every ordered pair.
//   - Read / LoadFile: N lines of N comma-separated numbers, no header.
//   - LoadOrGenerate: load when the file exists, otherwise generate and save.
//
// Errors:
//
//   - ErrMalformedMatrix: wrong row/column count or a field that does not parse.
//   - ErrInvalidDistance: negative, non-finite, off-diagonal zero or non-zero diagonal.
//   - ErrInvalidBounds:   Low < 1 or High < Low in GenerateConfig.
//   - ErrTooFewCities:    N < 2.
//
// No constructor returns a partially initialised Field together with an error.
package distance
