package viewer

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bitga/genetic/fitness"
	"github.com/lixenwraith/bitga/parameter"
	"github.com/lixenwraith/bitga/report"
)

var (
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleCaption = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSeed    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAxis    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlot    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleOptimal = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleNear    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// drawText writes text from (x, y), clipped at the screen edge; returns the next column
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Draw renders st onto s and shows it
func Draw(s tcell.Screen, st *State) {
	s.Clear()
	render(s, st)
	s.Show()
}

func render(s tcell.Screen, st *State) {
	w, _ := s.Size()
	x := parameter.ViewerPaddingX
	cfg := st.Config.Resolved()

	drawText(s, x, 0, styleTitle, "Binary Genetic Algorithm Optimizer")
	drawText(s, x, 1, styleCaption, fmt.Sprintf(
		"Population %d | Length %d | Target ones %d | Generations %d | Tournament %d | Crossover %.2f | Mutation %.4f",
		cfg.PopulationSize, cfg.ChromosomeLength, cfg.TargetOnes, cfg.Generations,
		cfg.TournamentSize, cfg.CrossoverRate, cfg.MutationRate))

	next := drawText(s, x, 3, tcell.StyleDefault, "Seed: ")
	next = drawText(s, next, 3, styleSeed, st.SeedText)
	drawText(s, next+2, 3, styleCaption, "[+/- step, digits edit, r run, q quit]")

	y := 5
	switch {
	case st.Err != nil:
		drawText(s, x, y, styleError, "Error: "+st.Err.Error())
		return
	case st.Running:
		drawText(s, x, y, tcell.StyleDefault, fmt.Sprintf("Running... generation %d/%d", len(st.Live), cfg.Generations))
		drawCurve(s, x, y+2, w-2*x, st.Live, cfg.ChromosomeLength, cfg.TargetOnes, cfg.MaxFitness)
		return
	case st.Report == nil:
		drawText(s, x, y, styleCaption, "Press r to run")
		return
	}

	rep := st.Report
	drawText(s, x, y, styleTitle, "Best Individual Found")
	drawText(s, x, y+1, tcell.StyleDefault, fmt.Sprintf("Best Fitness: %d", rep.BestFitness))
	drawText(s, x, y+2, tcell.StyleDefault, fmt.Sprintf("Ones: %d | Zeros: %d", rep.Ones, rep.Zeros))
	y += 3

	// Bitstring wrapped to the usable width
	lineWidth := max(w-2*x, 1)
	for i := 0; i < len(rep.Bitstring); i += lineWidth {
		drawText(s, x, y, tcell.StyleDefault, rep.Bitstring[i:min(i+lineWidth, len(rep.Bitstring))])
		y++
	}

	y++
	drawText(s, x, y, styleTitle, "Fitness Convergence")
	y = drawCurve(s, x, y+1, w-2*x, rep.Curve, rep.Config.ChromosomeLength, rep.Config.TargetOnes, rep.Config.MaxFitness)

	verdictStyle := styleNear
	if rep.Verdict == report.VerdictOptimal {
		verdictStyle = styleOptimal
	}
	drawText(s, x, y+1, verdictStyle, rep.Message())
}

// drawCurve plots best fitness per generation from the attainable floor to max
// Returns the row below the plot
func drawCurve(s tcell.Screen, x, y, width int, curve []int, length, target, maxFitness int) int {
	h := parameter.ViewerPlotHeight
	lo := maxFitness - fitness.MaxDistance(length, target)
	norm := fitness.NormalizeLinear(float64(lo), float64(maxFitness))

	// Y axis with labels at the top and bottom rows
	for row := 0; row < h; row++ {
		label := ""
		switch row {
		case 0:
			label = fmt.Sprintf("%4d", maxFitness)
		case h - 1:
			label = fmt.Sprintf("%4d", lo)
		}
		drawText(s, x, y+row, styleAxis, fmt.Sprintf("%-*s", parameter.ViewerAxisWidth-1, label))
		s.SetContent(x+parameter.ViewerAxisWidth-1, y+row, parameter.ViewerAxisChar, nil, styleAxis)
	}

	plotX := x + parameter.ViewerAxisWidth
	cols := max(width-parameter.ViewerAxisWidth, 1)
	for c := 0; c < cols; c++ {
		s.SetContent(plotX+c, y+h, parameter.ViewerBaseChar, nil, styleAxis)
	}
	if len(curve) > 0 {
		drawText(s, plotX, y+h+1, styleAxis, "1")
		last := fmt.Sprintf("gen %d", len(curve))
		drawText(s, plotX+max(min(len(curve), cols)-len(last), 2), y+h+1, styleAxis, last)
	}

	// One column per generation, sampling when the curve is wider than the plot
	n := min(len(curve), cols)
	prevRow := -1
	for c := 0; c < n; c++ {
		idx := c
		if len(curve) > cols {
			idx = c * (len(curve) - 1) / max(cols-1, 1)
		}
		row := h - 1 - int(math.Round(norm(float64(curve[idx]))*float64(h-1)))

		// Vertical connector from the previous point
		if prevRow >= 0 {
			for r := min(prevRow, row) + 1; r < max(prevRow, row); r++ {
				s.SetContent(plotX+c, y+r, parameter.ViewerPlotLine, nil, stylePlot)
			}
		}
		s.SetContent(plotX+c, y+row, parameter.ViewerPlotPoint, nil, stylePlot)
		prevRow = row
	}

	return y + h + 2
}
