// SPDX-License-Identifier: MIT

package distance

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/antcolony/matrix"
)

// Read parses a headerless CSV matrix: exactly n lines of n comma-separated
// numbers. When n ≤ 0 the order is taken from the number of fields on the
// first line. Fields may carry surrounding blanks.
//
// Errors:
//   - ErrMalformedMatrix for a row/column count mismatch or an unparseable field.
//   - Anything New returns for a well-formed but invalid matrix.
//
// Nothing is returned alongside an error.
func Read(r io.Reader, n int) (*Field, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column counts are checked here with better context
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		m    *matrix.Dense
		row  int
		rec  []string
		err  error
		v    float64
		j    int
		text string
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("distance.Read: %w: %w", ErrMalformedMatrix, err)
		}
		if m == nil {
			if n <= 0 {
				n = len(rec)
			}
			if n < MinCities {
				return nil, fmt.Errorf("distance.Read: n=%d: %w", n, ErrTooFewCities)
			}
			if m, err = matrix.NewDense(n, n); err != nil {
				return nil, fmt.Errorf("distance.Read: %w", err)
			}
		}
		if row >= n {
			return nil, fmt.Errorf("distance.Read: more than %d rows: %w", n, ErrMalformedMatrix)
		}
		if len(rec) != n {
			return nil, fmt.Errorf("distance.Read: row %d has %d fields, want %d: %w", row, len(rec), n, ErrMalformedMatrix)
		}
		for j = 0; j < n; j++ {
			text = strings.TrimSpace(rec[j])
			if v, err = strconv.ParseFloat(text, 64); err != nil {
				return nil, fmt.Errorf("distance.Read: row %d field %d %q: %w", row, j, text, ErrMalformedMatrix)
			}
			if err = m.Set(row, j, v); err != nil {
				return nil, fmt.Errorf("distance.Read: %w: %w", ErrInvalidDistance, err)
			}
		}
		row++
	}
	if m == nil || row != n {
		return nil, fmt.Errorf("distance.Read: got %d rows, want %d: %w", row, n, ErrMalformedMatrix)
	}

	return New(m)
}

// Write emits f as N lines of N comma-separated numbers, no header.
// Integral costs are written without a fractional part.
func Write(w io.Writer, f *Field) error {
	cw := csv.NewWriter(w)
	rec := make([]string, f.n)
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < f.n; j++ {
			rec[j] = strconv.FormatFloat(f.data[i*f.n+j], 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("distance.Write: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// LoadFile reads the matrix stored at path. See Read.
func LoadFile(path string, n int) (*Field, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distance.LoadFile: %w", err)
	}
	defer fh.Close()

	f, err := Read(bufio.NewReader(fh), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// SaveFile writes f to path, creating parent directories as needed.
// The file is written to a temporary sibling and renamed into place, so a
// failed save never leaves a truncated matrix behind.
func SaveFile(path string, f *Field) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("distance.SaveFile: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("distance.SaveFile: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	bw := bufio.NewWriter(tmp)
	if err = Write(bw, f); err == nil {
		err = bw.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("distance.SaveFile: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("distance.SaveFile: %w", err)
	}

	return nil
}

// Origin tells where LoadOrGenerate obtained its field.
type Origin int

const (
	// Loaded means the field was read from an existing file.
	Loaded Origin = iota
	// Generated means the file was absent and a fresh field was generated and saved.
	Generated
)

// String implements fmt.Stringer.
func (o Origin) String() string {
	if o == Generated {
		return "generated"
	}

	return "loaded"
}

// LoadOrGenerate loads path when it exists; otherwise it generates a field from
// cfg and src and saves it to path. A file that exists but fails to parse is an
// error, never silently regenerated.
func LoadOrGenerate(path string, cfg GenerateConfig, src IntSource) (*Field, Origin, error) {
	f, err := LoadFile(path, cfg.N)
	if err == nil {
		return f, Loaded, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, Loaded, err
	}

	if f, err = Generate(cfg, src); err != nil {
		return nil, Generated, err
	}
	if err = SaveFile(path, f); err != nil {
		return nil, Generated, err
	}

	return f, Generated, nil
}
