package report

import (
	"fmt"
	"io"
)

// errWriter keeps the first write error so the caller checks once
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteText renders the plain-text summary used when no terminal UI is available
func WriteText(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}

	ew.printf("Best Individual Found\n")
	ew.printf("  Best Fitness: %d\n", r.BestFitness)
	ew.printf("  Ones: %d | Zeros: %d\n", r.Ones, r.Zeros)
	ew.printf("  %s\n", r.Bitstring)
	ew.printf("\nFitness Convergence\n")
	for i, f := range r.Curve {
		ew.printf("  gen %3d: %d\n", i+1, f)
	}
	ew.printf("\n%s\n", r.Message())

	return ew.err
}
