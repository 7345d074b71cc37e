// Package report turns a run result into the artefacts a person reads:
// the verdict, a text summary, a persisted TOML record and a convergence plot.
package report

import (
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/lixenwraith/bitga/genome"
	"github.com/lixenwraith/bitga/optimizer"
)

// Verdict classifies the best individual of a run
type Verdict string

const (
	VerdictOptimal     Verdict = "optimal"
	VerdictNearOptimal Verdict = "near-optimal"
)

// Classify returns VerdictOptimal when best reaches max fitness with exactly target ones
func Classify(cfg optimizer.Config, best genome.Genome, bestFitness int) Verdict {
	cfg = cfg.Resolved()
	if bestFitness == cfg.MaxFitness && best.Weight() == cfg.TargetOnes {
		return VerdictOptimal
	}
	return VerdictNearOptimal
}

// Message is the human-readable verdict line
func Message(v Verdict, cfg optimizer.Config) string {
	if v == VerdictOptimal {
		cfg = cfg.Resolved()
		return fmt.Sprintf("Optimal solution found (%d ones, fitness = %d)", cfg.TargetOnes, cfg.MaxFitness)
	}
	return "Near-optimal solution found. Try a different seed."
}

// Report is the serializable record of one run
type Report struct {
	RunID       string           `toml:"run_id"`
	Config      optimizer.Config `toml:"config"`
	Bitstring   string           `toml:"bitstring"`
	BestFitness int              `toml:"best_fitness"`
	Ones        int              `toml:"ones"`
	Zeros       int              `toml:"zeros"`
	Curve       []int            `toml:"curve"`
	Verdict     Verdict          `toml:"verdict"`
}

// New builds a report with a fresh run identifier
func New(cfg optimizer.Config, res *optimizer.Result) *Report {
	cfg = cfg.Resolved()
	curve := make([]int, len(res.Curve))
	copy(curve, res.Curve)

	return &Report{
		RunID:       uuid.Must(uuid.NewV4()).String(),
		Config:      cfg,
		Bitstring:   res.Best.String(),
		BestFitness: res.BestFitness,
		Ones:        res.Ones(),
		Zeros:       res.Zeros(),
		Curve:       curve,
		Verdict:     Classify(cfg, res.Best, res.BestFitness),
	}
}

// Message is the verdict line for this report
func (r *Report) Message() string {
	return Message(r.Verdict, r.Config)
}
