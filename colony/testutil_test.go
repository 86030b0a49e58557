// Package colony_test provides lightweight helpers shared across *_test.go files.
package colony_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/distance"
	"github.com/stretchr/testify/require"
)

// eps is the tolerance for pheromone arithmetic that goes through (1-ρ).
const eps = 1e-12

// scenario4 is the four-city reference instance.
var scenario4 = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// scripted is a Source that replays fixed draws. Exhausted queues yield 0.
type scripted struct {
	ints   []int
	floats []float64
	seed   int64
}

var _ colony.Source = (*scripted)(nil)

func (s *scripted) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) Int63() int64 {
	s.seed++
	return s.seed
}

// constFloat is a Source whose Float64 always returns v.
type constFloat float64

func (constFloat) Intn(int) int       { return 0 }
func (c constFloat) Float64() float64 { return float64(c) }
func (constFloat) Int63() int64       { return 1 }

func mustField(t testing.TB, rows [][]float64) *distance.Field {
	t.Helper()
	f, err := distance.FromRows(rows)
	require.NoError(t, err)
	return f
}

func mustRandomField(t testing.TB, n int, seed int64) *distance.Field {
	t.Helper()
	f, err := distance.Generate(distance.GenerateConfig{N: n, Low: 5, High: 150}, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return f
}

// smallConfig is a fast config for property tests.
func smallConfig(ants, iters int) colony.Config {
	cfg := colony.DefaultConfig()
	cfg.Ants = ants
	cfg.Iterations = iters
	cfg.Seed = 42
	return cfg
}
