// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/distance"
)

func TestDefaultIsValid(t *testing.T) {
	f := config.Default()
	require.NoError(t, f.Validate())
	require.Equal(t, 300, f.Cities)
	require.Equal(t, colony.DefaultConfig(), f.Colony)
	require.Equal(t, distance.GenerateConfig{N: 300, Low: 5, High: 150}, f.Generate())
}

func TestParseOverlaysDefaults(t *testing.T) {
	in := `
cities: 50
distance:
  high: 90
colony:
  ants: 20
  rho: 0.5
  workers: 4
output:
  quiet: true
  plot: out/convergence.png
`
	f, err := config.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 50, f.Cities)
	require.Equal(t, 5, f.Distance.Low, "default kept")
	require.Equal(t, 90, f.Distance.High)
	require.Equal(t, 20, f.Colony.Ants)
	require.Equal(t, 100, f.Colony.Iterations, "default kept")
	require.Equal(t, 0.5, f.Colony.Rho)
	require.Equal(t, 5.0, f.Colony.Beta)
	require.Equal(t, 4, f.Colony.Workers)
	require.True(t, f.Output.Quiet)
	require.Equal(t, "out/convergence.png", f.Output.Plot)
	require.Equal(t, config.DefaultMatrixFile, f.Distance.File)
}

func TestParseEmptyDocument(t *testing.T) {
	f, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), f)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", "citties: 10\n"},
		{"bad rho", "colony:\n  rho: 2\n"},
		{"too few cities", "cities: 1\n"},
		{"bad bounds", "distance:\n  low: 10\n  high: 5\n"},
		{"empty file", "distance:\n  file: \"\"\n"},
		{"negative preview", "output:\n  preview: -1\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
		})
	}

	_, err := config.Parse(strings.NewReader("colony:\n  ants: 0\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, colony.ErrInvalidConfig)
}

func TestLoadAndMarshalRoundTrip(t *testing.T) {
	want := config.Default()
	want.Cities = 12
	want.Colony.Seed = 7
	want.Output.Database = "runs.db"

	raw, err := want.Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "antcolony.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
