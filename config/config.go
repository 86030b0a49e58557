// SPDX-License-Identifier: MIT

// Package config loads the antcolony command configuration from YAML.
//
// Every key is optional; missing keys keep their defaults. Unknown keys are
// rejected so typos do not pass silently.
//
//	cities: 300
//	distance:
//	  low: 5
//	  high: 150
//	  symmetric: false
//	  file: distances.csv
//	colony:
//	  ants: 100
//	  iterations: 100
//	  alpha: 1
//	  beta: 5
//	  rho: 0.2
//	  tau0: 1
//	  seed: 0
//	  workers: 1
//	output:
//	  preview: 10
//	  plot: ""
//	  database: ""
//	  quiet: false
//	  verbose: false
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/distance"
)

// DefaultMatrixFile is the CSV path used when distance.file is not set.
const DefaultMatrixFile = "distances.csv"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Distance configures where the distance matrix comes from.
type Distance struct {
	Low       int    `yaml:"low"`
	High      int    `yaml:"high"`
	Symmetric bool   `yaml:"symmetric"`
	File      string `yaml:"file"`
}

// Output configures what the command prints and writes.
type Output struct {
	Preview  int    `yaml:"preview"`  // k for the k×k matrix preview, 0 disables it
	Plot     string `yaml:"plot"`     // convergence chart path, empty disables it
	Database string `yaml:"database"` // sqlite path, empty disables run history
	Quiet    bool   `yaml:"quiet"`    // suppress per-iteration lines
	Verbose  bool   `yaml:"verbose"`  // add statistics to per-iteration lines
}

// File is the full command configuration.
type File struct {
	Cities   int           `yaml:"cities"`
	Distance Distance      `yaml:"distance"`
	Colony   colony.Config `yaml:"colony"`
	Output   Output        `yaml:"output"`
}

// Default returns the reference configuration.
func Default() File {
	return File{
		Cities: distance.DefaultCities,
		Distance: Distance{
			Low:  distance.DefaultLow,
			High: distance.DefaultHigh,
			File: DefaultMatrixFile,
		},
		Colony: colony.DefaultConfig(),
		Output: Output{Preview: 10},
	}
}

// Load reads path and overlays it on Default. See Parse.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// An empty document yields the defaults.
func Parse(r io.Reader) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Validate checks every section.
func (f File) Validate() error {
	if err := f.Generate().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := f.Colony.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if f.Distance.File == "" {
		return fmt.Errorf("%w: distance.file must not be empty", ErrInvalidConfig)
	}
	if f.Output.Preview < 0 {
		return fmt.Errorf("%w: output.preview=%d must be ≥ 0", ErrInvalidConfig, f.Output.Preview)
	}

	return nil
}

// Generate returns the matrix generator settings.
func (f File) Generate() distance.GenerateConfig {
	return distance.GenerateConfig{
		N:         f.Cities,
		Low:       f.Distance.Low,
		High:      f.Distance.High,
		Symmetric: f.Distance.Symmetric,
	}
}

// Marshal renders f as YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
