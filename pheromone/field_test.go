// SPDX-License-Identifier: MIT
package pheromone_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/katalvlaran/antcolony/pheromone"
	"github.com/stretchr/testify/require"
)

func TestNewUniform(t *testing.T) {
	f, err := pheromone.New(3, 1.5)
	require.NoError(t, err)
	require.Equal(t, 3, f.N())
	f.Do(func(i, j int, tau float64) bool {
		require.Equal(t, 1.5, tau, "cell (%d,%d)", i, j)
		return true
	})
	require.Equal(t, 13.5, f.Total())
}

func TestNewRejects(t *testing.T) {
	_, err := pheromone.New(0, 1)
	require.ErrorIs(t, err, pheromone.ErrDimensionMismatch)

	for _, tau := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = pheromone.New(2, tau)
		require.ErrorIs(t, err, pheromone.ErrInvalidLevel, "tau0=%v", tau)
	}
}

func TestEvaporate(t *testing.T) {
	f, err := pheromone.New(4, 1)
	require.NoError(t, err)

	require.NoError(t, f.Evaporate(0))
	require.Equal(t, 16.0, f.Total(), "Evaporate(0) is a no-op")

	require.NoError(t, f.Evaporate(0.2))
	require.InDelta(t, 0.8, f.At(2, 3), 1e-15)

	require.NoError(t, f.Evaporate(1))
	require.Zero(t, f.Total(), "Evaporate(1) zeroes the field")

	for _, rho := range []float64{-0.1, 1.1, math.NaN()} {
		require.ErrorIs(t, f.Evaporate(rho), pheromone.ErrInvalidRate, "rho=%v", rho)
	}
}

func TestDepositDirected(t *testing.T) {
	f, err := pheromone.New(3, 1)
	require.NoError(t, err)

	require.NoError(t, f.Deposit(0, 2, 0.5))
	require.Equal(t, 1.5, f.At(0, 2))
	require.Equal(t, 1.0, f.At(2, 0), "reverse edge untouched")

	require.ErrorIs(t, f.Deposit(0, 1, -1), pheromone.ErrInvalidAmount)
	require.ErrorIs(t, f.Deposit(0, 1, math.Inf(1)), pheromone.ErrInvalidAmount)
	require.ErrorIs(t, f.Deposit(3, 0, 1), pheromone.ErrDimensionMismatch)
	require.ErrorIs(t, f.Deposit(3, 0, 1), matrix.ErrOutOfRange)
}

func TestDepositTourIncludesClosingEdge(t *testing.T) {
	f, err := pheromone.New(4, 0.8)
	require.NoError(t, err)

	tour := []int{0, 2, 3, 1}
	require.NoError(t, f.DepositTour(tour, 0.25))

	traversed := map[[2]int]bool{{0, 2}: true, {2, 3}: true, {3, 1}: true, {1, 0}: true}
	f.Do(func(i, j int, tau float64) bool {
		if traversed[[2]int{i, j}] {
			require.InDelta(t, 1.05, tau, 1e-15, "edge (%d,%d)", i, j)
		} else {
			require.Equal(t, 0.8, tau, "edge (%d,%d)", i, j)
		}
		return true
	})

	require.NoError(t, f.DepositTour([]int{1}, 5), "single-city tour deposits nothing")
}

func TestFromMatrixAndSnapshotAreCopies(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0, 2}, {3, 0}})
	require.NoError(t, err)

	f, err := pheromone.FromMatrix(m)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 100))
	require.Equal(t, 2.0, f.At(0, 1))

	snap := f.Snapshot()
	require.NoError(t, f.Deposit(0, 1, 1))
	v, _ := snap.At(0, 1)
	require.Equal(t, 2.0, v)

	c := f.Clone()
	require.NoError(t, c.Evaporate(1))
	require.Equal(t, 3.0, f.At(0, 1))

	neg, _ := matrix.NewFromRows([][]float64{{0, -1}, {1, 0}})
	_, err = pheromone.FromMatrix(neg)
	require.ErrorIs(t, err, pheromone.ErrInvalidLevel)

	rect, _ := matrix.NewDense(2, 3)
	_, err = pheromone.FromMatrix(rect)
	require.ErrorIs(t, err, pheromone.ErrDimensionMismatch)
}
