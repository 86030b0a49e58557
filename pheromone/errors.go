// SPDX-License-Identifier: MIT

package pheromone

import "errors"

var (
	// ErrInvalidRate signals an evaporation rate outside [0,1] or NaN.
	ErrInvalidRate = errors.New("pheromone: evaporation rate outside [0,1]")

	// ErrInvalidAmount signals a negative or non-finite deposit.
	ErrInvalidAmount = errors.New("pheromone: invalid deposit amount")

	// ErrInvalidLevel signals a non-positive or non-finite initial level,
	// or a warm-start matrix with negative cells.
	ErrInvalidLevel = errors.New("pheromone: invalid pheromone level")

	// ErrDimensionMismatch signals an index or order that does not fit the field.
	ErrDimensionMismatch = errors.New("pheromone: dimension mismatch")
)
