// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/antcolony/matrix"
)

// Reference generator constants.
const (
	DefaultCities = 300 // N
	DefaultLow    = 5   // inclusive lower cost bound
	DefaultHigh   = 150 // inclusive upper cost bound
)

// IntSource is the subset of *rand.Rand that Generate consumes.
type IntSource interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// GenerateConfig controls random matrix generation.
type GenerateConfig struct {
	N    int `yaml:"-"`    // number of cities (set from the top-level config)
	Low  int `yaml:"low"`  // inclusive lower bound, ≥ 1
	High int `yaml:"high"` // inclusive upper bound, ≥ Low

	// Symmetric mirrors the upper triangle into the lower one. When false every
	// ordered pair (i,j) draws its own cost.
	Symmetric bool `yaml:"symmetric"`
}

// DefaultGenerateConfig returns N=300 with costs in [5, 150], asymmetric.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{N: DefaultCities, Low: DefaultLow, High: DefaultHigh}
}

// Validate checks the generator parameters.
//
// Errors: ErrTooFewCities, ErrInvalidBounds.
func (c GenerateConfig) Validate() error {
	if c.N < MinCities {
		return fmt.Errorf("distance: n=%d: %w", c.N, ErrTooFewCities)
	}
	if c.Low < 1 || c.High < c.Low {
		return fmt.Errorf("distance: [%d,%d]: %w", c.Low, c.High, ErrInvalidBounds)
	}

	return nil
}

// Generate builds a Field with uniformly distributed integer costs in
// [cfg.Low, cfg.High] on every off-diagonal cell and 0 on the diagonal.
//
// Cells are drawn in row-major order (i ascending, then j ascending), skipping
// the diagonal; in symmetric mode only j > i is drawn and mirrored. The same
// source state therefore always yields the same matrix.
//
// Complexity: O(n²) time and space.
func Generate(cfg GenerateConfig, src IntSource) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(cfg.N, cfg.N)
	if err != nil {
		return nil, fmt.Errorf("distance.Generate: %w", err)
	}

	span := cfg.High - cfg.Low + 1
	var (
		i, j int
		v    float64
	)
	for i = 0; i < cfg.N; i++ {
		for j = 0; j < cfg.N; j++ {
			if i == j || (cfg.Symmetric && j < i) {
				continue
			}
			v = float64(cfg.Low + src.Intn(span))
			_ = m.Set(i, j, v) // indices in range, v finite
			if cfg.Symmetric {
				_ = m.Set(j, i, v)
			}
		}
	}

	return New(m)
}
