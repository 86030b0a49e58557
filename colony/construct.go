// SPDX-License-Identifier: MIT

package colony

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/pheromone"
	"github.com/katalvlaran/antcolony/tour"
)

// Constructor builds tours over a distance field under a pheromone snapshot.
//
// The heuristic term η[i][j] = (1/d[i][j])^β is computed once; the attraction
// table τ[i][j]^α·η[i][j] is rebuilt by Refresh after every pheromone update.
// Between refreshes the Constructor is read-only, so Construct may be called
// from several goroutines as long as each passes its own Source.
type Constructor struct {
	n      int
	alpha  float64
	eta    []float64 // (1/d)^β, row-major, diagonal 0
	choice []float64 // τ^α·η, row-major
}

// NewConstructor precomputes η for d and primes the attraction table from p.
//
// Errors: ErrDimensionMismatch when p and d differ in order.
// Complexity: O(n²).
func NewConstructor(d *distance.Field, p *pheromone.Field, alpha, beta float64) (*Constructor, error) {
	n := d.N()
	c := &Constructor{
		n:      n,
		alpha:  alpha,
		eta:    make([]float64, n*n),
		choice: make([]float64, n*n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			c.eta[i*n+j] = math.Pow(1.0/d.At(i, j), beta)
		}
	}
	if err := c.Refresh(p); err != nil {
		return nil, err
	}

	return c, nil
}

// N returns the number of cities.
func (c *Constructor) N() int { return c.n }

// Refresh rebuilds the attraction table from the current pheromone field.
// Must not run concurrently with Construct.
//
// Errors: ErrDimensionMismatch when p has a different order.
// Complexity: O(n²).
func (c *Constructor) Refresh(p *pheromone.Field) error {
	if p.N() != c.n {
		return fmt.Errorf("colony: pheromone order %d, distance order %d: %w", p.N(), c.n, ErrDimensionMismatch)
	}
	p.Do(func(i, j int, tau float64) bool {
		c.choice[i*c.n+j] = math.Pow(tau, c.alpha) * c.eta[i*c.n+j]
		return true
	})

	return nil
}

// Attraction returns τ[i][j]^α·(1/d[i][j])^β as of the last Refresh.
func (c *Constructor) Attraction(i, j int) float64 { return c.choice[i*c.n+j] }

// Construct draws a start city uniformly from src and builds a full tour.
// It returns the tour and the number of degenerate selections made.
func (c *Constructor) Construct(src Source) (tour.Tour, int, error) {
	return c.ConstructFrom(src.Intn(c.n), src)
}

// ConstructFrom builds a full tour beginning at start.
// Every step draws exactly once from src: Float64 for a roulette pick, or
// Intn for the degenerate fallback.
//
// Errors: *SelectionError (ErrSelectionInvariant); fmt-wrapped
// ErrDimensionMismatch for a start outside [0, N).
//
// Complexity: O(n²) time, O(n) space.
func (c *Constructor) ConstructFrom(start int, src Source) (tour.Tour, int, error) {
	if start < 0 || start >= c.n {
		return nil, 0, fmt.Errorf("colony: start city %d outside [0,%d): %w", start, c.n, ErrDimensionMismatch)
	}
	var (
		t          = make(tour.Tour, 1, c.n)
		visited    = make([]bool, c.n)
		cur        = start
		next       int
		degenerate int
		fallback   bool
		err        error
	)
	t[0] = start
	visited[start] = true
	for len(t) < c.n {
		next, fallback, err = c.selectNext(cur, visited, c.n-len(t), len(t), src)
		if err != nil {
			return nil, degenerate, err
		}
		if fallback {
			degenerate++
		}
		visited[next] = true
		t = append(t, next)
		cur = next
	}

	return t, degenerate, nil
}

// selectNext picks the next city by roulette over the attraction row of cur,
// walking unvisited cities in ascending index order. remaining is the number of
// unvisited cities (≥ 1); step is the current tour length, used for errors.
func (c *Constructor) selectNext(cur int, visited []bool, remaining, step int, src Source) (int, bool, error) {
	row := c.choice[cur*c.n : (cur+1)*c.n]

	var (
		sum float64
		i   int
	)
	for i = range row {
		if !visited[i] {
			sum += row[i]
		}
	}

	// Zero, NaN or Inf: no usable weights, choose uniformly.
	if !(sum > 0) || math.IsInf(sum, 0) {
		k := src.Intn(remaining)
		if next := nthUnvisited(visited, k); next >= 0 {
			return next, true, nil
		}
		return -1, true, &SelectionError{City: cur, Step: step, Remaining: remaining, Sum: sum, Draw: float64(k)}
	}

	r := src.Float64() * sum
	var cum float64
	for i = range row {
		if visited[i] {
			continue
		}
		cum += row[i]
		if cum >= r {
			return i, false, nil
		}
	}

	return -1, false, &SelectionError{City: cur, Step: step, Remaining: remaining, Sum: sum, Draw: r}
}

// nthUnvisited returns the k-th (0-based) unvisited city in ascending order,
// or -1 when fewer than k+1 cities are unvisited.
func nthUnvisited(visited []bool, k int) int {
	if k < 0 {
		return -1
	}
	var i int
	for i = range visited {
		if visited[i] {
			continue
		}
		if k == 0 {
			return i
		}
		k--
	}

	return -1
}
