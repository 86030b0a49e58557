// SPDX-License-Identifier: MIT

package colony

import (
	"fmt"
	"math"
)

// Reference parameter values.
const (
	DefaultAnts       = 100
	DefaultIterations = 100
	DefaultAlpha      = 1.0
	DefaultBeta       = 5.0
	DefaultRho        = 0.2
	DefaultTau0       = 1.0
	DefaultWorkers    = 1
)

// Config holds the colony parameters.
//
// Ants       – ants per iteration (M), ≥ 1.
// Iterations – iteration budget, ≥ 1.
// Alpha      – pheromone exponent α, finite and ≥ 0.
// Beta       – heuristic exponent β, finite and ≥ 0.
// Rho        – evaporation rate ρ ∈ [0,1]; 1 wipes the trail every iteration.
// Tau0       – initial pheromone level τ₀ > 0.
// Seed       – random seed; 0 selects the fixed default stream.
// Workers    – goroutines building tours; 1 is the sequential reference mode.
type Config struct {
	Ants       int     `yaml:"ants"`
	Iterations int     `yaml:"iterations"`
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Rho        float64 `yaml:"rho"`
	Tau0       float64 `yaml:"tau0"`
	Seed       int64   `yaml:"seed"`
	Workers    int     `yaml:"workers"`
}

// DefaultConfig returns the reference parameters:
// 100 ants, 100 iterations, α=1, β=5, ρ=0.2, τ₀=1, seed 0, 1 worker.
func DefaultConfig() Config {
	return Config{
		Ants:       DefaultAnts,
		Iterations: DefaultIterations,
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
		Rho:        DefaultRho,
		Tau0:       DefaultTau0,
		Seed:       0,
		Workers:    DefaultWorkers,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Ants < 1:
		return fmt.Errorf("%w: ants=%d must be ≥ 1", ErrInvalidConfig, c.Ants)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations=%d must be ≥ 1", ErrInvalidConfig, c.Iterations)
	case !finiteNonNegative(c.Alpha):
		return fmt.Errorf("%w: alpha=%v must be finite and ≥ 0", ErrInvalidConfig, c.Alpha)
	case !finiteNonNegative(c.Beta):
		return fmt.Errorf("%w: beta=%v must be finite and ≥ 0", ErrInvalidConfig, c.Beta)
	case !(c.Rho >= 0 && c.Rho <= 1):
		return fmt.Errorf("%w: rho=%v must lie in [0,1]", ErrInvalidConfig, c.Rho)
	case !(c.Tau0 > 0) || math.IsInf(c.Tau0, 0):
		return fmt.Errorf("%w: tau0=%v must be finite and > 0", ErrInvalidConfig, c.Tau0)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers=%d must be ≥ 1", ErrInvalidConfig, c.Workers)
	}

	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
