package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotCurve draws best fitness against the 1-indexed generation and saves it;
// the image format follows the file extension
func PlotCurve(curve []int, outPath string) error {
	if len(curve) == 0 {
		return fmt.Errorf("empty curve")
	}

	p := plot.New()
	p.Title.Text = "GA Convergence Curve"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best Fitness"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(curve))
	for i, f := range curve {
		pts[i].X = float64(i + 1)
		pts[i].Y = float64(f)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, outPath)
}
