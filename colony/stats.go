// SPDX-License-Identifier: MIT

package colony

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// lengthStats fills the distribution fields of rec from the ant tour lengths.
// lengths must be non-empty.
func lengthStats(rec *IterationRecord, lengths []float64) {
	rec.IterationBest = floats.Min(lengths)
	rec.Worst = floats.Max(lengths)
	if len(lengths) == 1 {
		rec.Mean = lengths[0]
		rec.StdDev = 0
		return
	}
	rec.Mean, rec.StdDev = stat.MeanStdDev(lengths, nil)
}
