// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteProfile charts ring brightness by degree with the threshold line and,
// when seg is non-nil, the detected arc edges. Used to tune radius and
// threshold against real screenshots.
func WriteProfile(path string, ring *Ring, threshold int, seg *Segment) error {
	p := plot.New()
	p.Title.Text = "FOV Ring Brightness"
	p.X.Label.Text = "Degree (0 = image +x, clockwise)"
	p.Y.Label.Text = "V"
	p.X.Min, p.X.Max = 0, RingSize-1
	p.Y.Min, p.Y.Max = 0, 255

	pts := make(plotter.XYs, RingSize)
	for d, v := range ring {
		pts[d] = plotter.XY{X: float64(d), Y: float64(v)}
	}
	samples, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build brightness line: %w", err)
	}
	samples.Width = vg.Points(1)
	samples.Color = color.RGBA{B: 255, A: 255}
	p.Add(samples)
	p.Legend.Add("brightness", samples)

	cutoff := plotter.NewFunction(func(float64) float64 { return float64(threshold) })
	cutoff.Width = vg.Points(1)
	cutoff.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	cutoff.Color = color.RGBA{R: 255, A: 255}
	p.Add(cutoff)
	p.Legend.Add(fmt.Sprintf("threshold %d", threshold), cutoff)

	if seg != nil {
		for _, deg := range []int{seg.Start, seg.End} {
			edge, err := plotter.NewLine(plotter.XYs{
				{X: float64(deg), Y: 0},
				{X: float64(deg), Y: 255},
			})
			if err != nil {
				return fmt.Errorf("failed to build arc edge line: %w", err)
			}
			edge.Width = vg.Points(1)
			edge.Color = color.RGBA{G: 160, A: 255}
			p.Add(edge)
		}
	}

	if err := p.Save(8*vg.Inch, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save ring profile: %w", err)
	}
	return nil
}
