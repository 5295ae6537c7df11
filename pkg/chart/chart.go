// Package chart draws the IPC-2221 derating chart: required trace width
// against current for outer and inner layers.
package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"eecalc/pkg/trace"
)

const DEFAULT_POINTS = 50

type Options struct {
	TempRise   float64 // C
	Thickness  float64 // mm
	MaxCurrent float64 // A, right end of the current axis
	Points     int
}

// Derating builds the chart. Points below two fall back to DEFAULT_POINTS.
func Derating(o Options) (*plot.Plot, error) {
	if o.MaxCurrent <= 0 {
		return nil, fmt.Errorf("chart: max current %g must be positive", o.MaxCurrent)
	}
	n := o.Points
	if n < 2 {
		n = DEFAULT_POINTS
	}

	currents := make([]float64, n)
	for i := range currents {
		currents[i] = o.MaxCurrent * float64(i) / float64(n-1)
	}
	external, internal, err := trace.Curve(o.TempRise, o.Thickness, currents)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("IPC-2221 trace width, dT = %g C, t = %g mm", o.TempRise, o.Thickness)
	p.X.Label.Text = "Current (A)"
	p.Y.Label.Text = "Width (mm)"
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLines(p,
		trace.External.String(), points(currents, external),
		trace.Internal.String(), points(currents, internal),
	); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	return p, nil
}

// Save writes the chart; the format follows the file extension.
func Save(p *plot.Plot, path string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func points(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
