package parameter

import "time"

// Viewer Layout
const (
	// ViewerPaddingX is the left padding of every viewer line
	ViewerPaddingX = 2

	// ViewerPlotHeight is the number of rows used by the convergence plot
	ViewerPlotHeight = 12

	// ViewerAxisWidth is the width reserved for Y axis labels
	ViewerAxisWidth = 5

	// ViewerFrameInterval is the redraw cadence while a run is in progress
	ViewerFrameInterval = 33 * time.Millisecond

	// ViewerProgressBuffer is channel capacity for per-generation updates
	ViewerProgressBuffer = 64
)

// Viewer Symbols
const (
	ViewerPlotPoint = '●'
	ViewerPlotLine  = '·'
	ViewerAxisChar  = '│'
	ViewerBaseChar  = '─'
)
