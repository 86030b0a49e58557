// SPDX-License-Identifier: MIT
package distance_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/stretchr/testify/require"
)

func TestReadValid(t *testing.T) {
	in := "0,10,15,20\n10,0,35,25\n15, 35, 0, 30\n20,25,30,0\n"
	f, err := distance.Read(strings.NewReader(in), 4)
	require.NoError(t, err)
	require.Equal(t, 35.0, f.At(2, 1))

	inferred, err := distance.Read(strings.NewReader(in), 0)
	require.NoError(t, err)
	require.Equal(t, 4, inferred.N())
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want error
	}{
		{"short row", "0,10,15,20\n10,0,35\n15,35,0,30\n20,25,30,0\n", 4, distance.ErrMalformedMatrix},
		{"missing row", "0,10,15,20\n10,0,35,25\n15,35,0,30\n", 4, distance.ErrMalformedMatrix},
		{"extra row", "0,1\n1,0\n1,0\n", 2, distance.ErrMalformedMatrix},
		{"bad number", "0,x\n1,0\n", 2, distance.ErrMalformedMatrix},
		{"empty", "", 3, distance.ErrMalformedMatrix},
		{"wrong order", "0,1,1\n1,0,1\n1,1,0\n", 4, distance.ErrMalformedMatrix},
		{"negative", "0,-1\n1,0\n", 2, distance.ErrInvalidDistance},
		{"infinite", "0,Inf\n1,0\n", 2, distance.ErrInvalidDistance},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f, err := distance.Read(strings.NewReader(tc.in), tc.n)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, f, "no partially initialised field")
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	f, err := distance.FromRows(scenario4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, distance.Write(&buf, f))
	require.Equal(t, "0,10,15,20\n10,0,35,25\n15,35,0,30\n20,25,30,0\n", buf.String())

	back, err := distance.Read(&buf, 4)
	require.NoError(t, err)
	require.True(t, f.Dense().Equal(back.Dense()))
}

func TestLoadOrGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "distances.csv")
	cfg := distance.GenerateConfig{N: 6, Low: 5, High: 150}

	first, origin, err := distance.LoadOrGenerate(path, cfg, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.Equal(t, distance.Generated, origin)
	require.FileExists(t, path)

	// A different seed must not matter once the file exists.
	second, origin, err := distance.LoadOrGenerate(path, cfg, rand.New(rand.NewSource(10)))
	require.NoError(t, err)
	require.Equal(t, distance.Loaded, origin)
	require.Equal(t, "loaded", origin.String())
	require.True(t, first.Dense().Equal(second.Dense()))
}

func TestLoadOrGenerateMalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distances.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1,2\n1,0\n"), 0o644))

	f, _, err := distance.LoadOrGenerate(path, distance.GenerateConfig{N: 3, Low: 1, High: 2}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, distance.ErrMalformedMatrix)
	require.Nil(t, f)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0,1,2\n1,0\n", string(raw), "existing file left untouched")
}
