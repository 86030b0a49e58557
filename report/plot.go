// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/antcolony/colony"
)

// Chart dimensions.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// ErrNoIterations is returned when a report has nothing to chart.
var ErrNoIterations = errors.New("report: no iterations to plot")

// convergencePlot builds a chart with best-so-far, iteration best and
// iteration mean against the iteration number.
func convergencePlot(rep *colony.Report) (*plot.Plot, error) {
	if rep == nil || len(rep.Iterations) == 0 {
		return nil, ErrNoIterations
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("ACO convergence (%d cities, %d ants)", rep.Cities, rep.Ants)
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Tour length"

	var (
		bestPts = make(plotter.XYs, len(rep.Iterations))
		iterPts = make(plotter.XYs, len(rep.Iterations))
		meanPts = make(plotter.XYs, len(rep.Iterations))
	)
	for i, rec := range rep.Iterations {
		x := float64(rec.Iteration)
		bestPts[i].X, bestPts[i].Y = x, rec.BestLength
		iterPts[i].X, iterPts[i].Y = x, rec.IterationBest
		meanPts[i].X, meanPts[i].Y = x, rec.Mean
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return nil, err
	}
	iterLine, err := plotter.NewLine(iterPts)
	if err != nil {
		return nil, err
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return nil, err
	}
	bestLine.LineStyle.Color = color.RGBA{R: 200, A: 255}
	bestLine.LineStyle.Width = vg.Points(1.5)
	iterLine.LineStyle.Color = color.RGBA{B: 200, A: 255}
	meanLine.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), meanLine, iterLine, bestLine)
	p.Legend.Add("best so far", bestLine)
	p.Legend.Add("iteration best", iterLine)
	p.Legend.Add("iteration mean", meanLine)
	p.Legend.Top = true

	return p, nil
}

// SaveConvergence writes the convergence chart to path; the image format
// follows the file extension (.png, .svg, .pdf, ...).
func SaveConvergence(rep *colony.Report, path string) error {
	p, err := convergencePlot(rep)
	if err != nil {
		return err
	}
	if err = p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}

// WriteConvergence renders the chart in the given format ("png", "svg", ...) to w.
func WriteConvergence(w io.Writer, rep *colony.Report, format string) error {
	p, err := convergencePlot(rep)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
