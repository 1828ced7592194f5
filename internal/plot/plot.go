// Package plot renders the diagnostic wind luminosity plot.
package plot

import (
	"fmt"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Render draws the Lw time series and saves it to path. The image
// format follows the file extension; the reference tool writes PNG.
func Render(path string, times, luminosity []float64) error {
	if len(times) != len(luminosity) {
		return fmt.Errorf("mismatched series lengths: %d times, %d luminosity values", len(times), len(luminosity))
	}

	p := gplot.New()
	p.Title.Text = "Wind luminosity over time"
	p.X.Label.Text = "Time [s]"
	p.Y.Label.Text = "Lw [erg/s]"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = luminosity[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build luminosity line: %w", err)
	}
	p.Add(line)
	p.Legend.Add("Lw", line)

	if err := p.Save(8*vg.Inch, 4.5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
