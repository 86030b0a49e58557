// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage shared by the distance and
// pheromone fields.
//
// What & Why:
//
//	Dense is a flat, row-major buffer of float64 values (offset = i*cols + j)
//	sized once at construction. Public accessors return sentinel errors instead
//	of panicking, so callers can surface shape problems without recovering.
//	In-place helpers (Fill, Scale, AddAt, Apply) exist because the colony mutates
//	its pheromone field every iteration and must not allocate in that loop.
//
// Determinism:
//
//	Every traversal is a fixed i→j loop. There is no map iteration and no hidden
//	randomness, so two runs over equal inputs visit cells in the same order.
//
// Complexity quicksheet:
//
//	NewDense/NewFilled/NewFromRows: O(r*c). At/Set/AddAt: O(1).
//	Fill/Scale/Apply/Do/Clone: O(r*c). View: O(1).
package matrix
