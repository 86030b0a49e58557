// SPDX-License-Identifier: MIT
package distance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// scenario4 is the four-city reference matrix used across packages.
var scenario4 = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

func TestFromRowsValid(t *testing.T) {
	f, err := distance.FromRows(scenario4)
	require.NoError(t, err)
	require.Equal(t, 4, f.N())
	require.Equal(t, 35.0, f.At(1, 2))
	require.Equal(t, []float64{20, 25, 30, 0}, f.Row(3))

	for i := 0; i < f.N(); i++ {
		require.Zero(t, f.At(i, i))
	}
}

func TestFromRowsAsymmetricAccepted(t *testing.T) {
	f, err := distance.FromRows([][]float64{{0, 1}, {7, 0}})
	require.NoError(t, err)
	require.Equal(t, 1.0, f.At(0, 1))
	require.Equal(t, 7.0, f.At(1, 0))
}

func TestFromRowsRejects(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, distance.ErrMalformedMatrix},
		{"ragged", [][]float64{{0, 1}, {1}}, distance.ErrMalformedMatrix},
		{"non-square", [][]float64{{0, 1, 2}, {1, 0, 2}}, distance.ErrMalformedMatrix},
		{"single city", [][]float64{{0}}, distance.ErrTooFewCities},
		{"negative", [][]float64{{0, -1}, {1, 0}}, distance.ErrInvalidDistance},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, distance.ErrInvalidDistance},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, distance.ErrInvalidDistance},
		{"zero off-diagonal", [][]float64{{0, 0}, {1, 0}}, distance.ErrInvalidDistance},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f, err := distance.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, f)
		})
	}
}

func TestNewNil(t *testing.T) {
	_, err := distance.New(nil)
	require.ErrorIs(t, err, distance.ErrMalformedMatrix)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDenseIsACopy(t *testing.T) {
	f, err := distance.FromRows(scenario4)
	require.NoError(t, err)

	m := f.Dense()
	require.NoError(t, m.Set(0, 1, 999))
	require.Equal(t, 10.0, f.At(0, 1))

	back, err := distance.New(f.Dense())
	require.NoError(t, err)
	require.Equal(t, f.Row(2), back.Row(2))
}

func TestPreview(t *testing.T) {
	f, err := distance.FromRows(scenario4)
	require.NoError(t, err)

	require.Equal(t, "   0   10 \n  10    0 \n", f.Preview(2))
	require.Equal(t, 4, len(splitLines(f.Preview(10))), "k clipped to N")
	require.Empty(t, f.Preview(0))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}
