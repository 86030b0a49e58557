// SPDX-License-Identifier: MIT

// Package tour - closed-tour utilities shared by the colony and its reporters.
//
// A Tour lists every city in [0, n) exactly once; the closing edge
// t[n-1]→t[0] is implicit and never stored. Provided helpers:
//   - Validate: verify t is a permutation of {0..n-1}.
//   - Length: sum of consecutive edges plus the closing edge.
//   - Edges: directed edges including the closing one.
//   - Rotate: cyclic shift so the tour starts at a given city.
//   - String: arrow-joined city indices, e.g. "0 -> 2 -> 3 -> 1".
//
// Design:
//   - No logging, no panics on user input; only the sentinels below.
//   - O(n) time for every helper.
package tour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotPermutation signals a repeated or out-of-range city.
	ErrNotPermutation = errors.New("tour: not a permutation of the cities")

	// ErrDimensionMismatch signals a tour whose length disagrees with the city count.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")
)

// Separator joins city indices in String.
const Separator = " -> "

// Tour is an ordered visit sequence over city indices.
type Tour []int

// Distances is the read side of a distance field.
type Distances interface {
	N() int
	At(i, j int) float64
}

// Validate checks that t is a permutation of {0..n-1} of length n.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func Validate(t Tour, n int) error {
	if n <= 0 || len(t) != n {
		return fmt.Errorf("tour: len=%d n=%d: %w", len(t), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tour: city %d at position %d out of range: %w", v, i, ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("tour: city %d repeated at position %d: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Length returns Σ d(t[k], t[k+1]) + d(t[n-1], t[0]).
// The tour is assumed valid for d; see Validate.
//
// Complexity: O(n).
func Length(d Distances, t Tour) float64 {
	k := len(t)
	if k < 2 {
		return 0
	}
	var (
		sum float64
		i   int
	)
	for i = 0; i < k-1; i++ {
		sum += d.At(t[i], t[i+1])
	}

	return sum + d.At(t[k-1], t[0])
}

// Edges returns the directed edges of the closed tour, closing edge last.
// Complexity: O(n) time and space.
func Edges(t Tour) [][2]int {
	k := len(t)
	if k < 2 {
		return nil
	}
	out := make([][2]int, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = [2]int{t[i], t[(i+1)%k]}
	}

	return out
}

// Rotate returns a fresh copy of t shifted so that it begins at start.
// The cyclic order, and therefore the closed-tour length, is preserved.
//
// Errors: ErrNotPermutation when start does not occur in t.
// Complexity: O(n).
func Rotate(t Tour, start int) (Tour, error) {
	pivot := -1
	var i int
	for i = range t {
		if t[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("tour: start %d not in tour: %w", start, ErrNotPermutation)
	}
	out := make(Tour, len(t))
	for i = range t {
		out[i] = t[(pivot+i)%len(t)]
	}

	return out, nil
}

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// String renders the tour as arrow-joined indices.
func (t Tour) String() string {
	var b strings.Builder
	var i int
	for i = range t {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(strconv.Itoa(t[i]))
	}

	return b.String()
}
