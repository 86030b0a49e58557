// SPDX-License-Identifier: MIT
package distance_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/stretchr/testify/require"
)

func TestGenerateBoundsAndDiagonal(t *testing.T) {
	cfg := distance.GenerateConfig{N: 25, Low: 5, High: 150}
	f, err := distance.Generate(cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, 25, f.N())

	var i, j int
	for i = 0; i < f.N(); i++ {
		for j = 0; j < f.N(); j++ {
			v := f.At(i, j)
			if i == j {
				require.Zero(t, v)
				continue
			}
			require.GreaterOrEqual(t, v, 5.0)
			require.LessOrEqual(t, v, 150.0)
			require.Equal(t, float64(int(v)), v, "integer cost expected")
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := distance.GenerateConfig{N: 12, Low: 1, High: 9}
	a, err := distance.Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := distance.Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.True(t, a.Dense().Equal(b.Dense()))
}

func TestGenerateSymmetric(t *testing.T) {
	cfg := distance.GenerateConfig{N: 10, Low: 1, High: 1000, Symmetric: true}
	f, err := distance.Generate(cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	for i := 0; i < f.N(); i++ {
		for j := i + 1; j < f.N(); j++ {
			require.Equal(t, f.At(i, j), f.At(j, i))
		}
	}
}

func TestGenerateSingleValueRange(t *testing.T) {
	f, err := distance.Generate(distance.GenerateConfig{N: 3, Low: 4, High: 4}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 4.0, f.At(2, 0))
}

func TestGenerateConfigValidate(t *testing.T) {
	require.NoError(t, distance.DefaultGenerateConfig().Validate())

	tests := []struct {
		name string
		cfg  distance.GenerateConfig
		want error
	}{
		{"one city", distance.GenerateConfig{N: 1, Low: 1, High: 2}, distance.ErrTooFewCities},
		{"low zero", distance.GenerateConfig{N: 3, Low: 0, High: 2}, distance.ErrInvalidBounds},
		{"high below low", distance.GenerateConfig{N: 3, Low: 5, High: 4}, distance.ErrInvalidBounds},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := distance.Generate(tc.cfg, rand.New(rand.NewSource(1)))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
