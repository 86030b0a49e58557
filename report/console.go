// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/distance"
)

// DefaultPreview is the size of the distance-matrix corner printed at start.
const DefaultPreview = 10

// Console writes human-readable run output to W. It implements colony.Observer.
// Write errors are remembered and returned by Err; later writes are skipped.
type Console struct {
	W       io.Writer
	Verbose bool // append mean/std-dev/degenerate figures to each iteration line
	err     error
}

var _ colony.Observer = (*Console)(nil)

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, verbose bool) *Console {
	return &Console{W: w, Verbose: verbose}
}

// Err returns the first write error, if any.
func (c *Console) Err() error { return c.err }

func (c *Console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.W, format, args...)
}

// Preview prints the top-left k×k block of d.
func (c *Console) Preview(d *distance.Field, k int) {
	c.printf("Distance matrix (first %d×%d of %d cities):\n", min(k, d.N()), min(k, d.N()), d.N())
	c.printf("%s", d.Preview(k))
}

// OnIteration prints one progress line.
func (c *Console) OnIteration(rec colony.IterationRecord) {
	c.printf("Iteration %d: Best Length = %s", rec.Iteration, formatLength(rec.BestLength))
	if c.Verbose {
		c.printf(" (iteration best %s, mean %.2f, std %.2f, degenerate %d)",
			formatLength(rec.IterationBest), rec.Mean, rec.StdDev, rec.Degenerate)
	}
	c.printf("\n")
}

// Summary prints the best route and its length.
func (c *Console) Summary(rep *colony.Report) {
	c.printf("Best Route: %s\n", rep.Best.Tour)
	c.printf("Best Length: %s\n", formatLength(rep.Best.Length))
}

// formatLength prints integral lengths without a fractional part.
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
