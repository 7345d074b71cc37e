// Package viewer is the interactive terminal front end: the seed is edited
// in place, a run streams its convergence curve live, and the finished run
// is shown with its verdict.
package viewer

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bitga/optimizer"
	"github.com/lixenwraith/bitga/report"
)

// maxSeedDigits keeps the seed within int64
const maxSeedDigits = 18

// State is everything Draw needs; it is owned by the event loop goroutine
type State struct {
	Config   optimizer.Config
	SeedText string

	Running bool
	Live    []int

	Report *report.Report
	Err    error
}

// NewState starts from cfg with the seed field showing cfg.Seed
func NewState(cfg optimizer.Config) *State {
	return &State{
		Config:   cfg,
		SeedText: strconv.FormatInt(cfg.Seed, 10),
	}
}

// Seed parses the seed field; an empty or lone "-" field is seed 0
func (s *State) Seed() int64 {
	v, err := strconv.ParseInt(s.SeedText, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// StepSeed adds delta to the current seed
func (s *State) StepSeed(delta int64) {
	s.SeedText = strconv.FormatInt(s.Seed()+delta, 10)
}

// action is the outcome of one key press
type action int

const (
	actionNone action = iota
	actionRun
	actionQuit
)

// handleKey applies a key press to the state and reports what the loop must do
// Seed edits are ignored while a run is in progress
func (s *State) handleKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		if s.Running {
			return actionNone
		}
		return actionRun
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if !s.Running && len(s.SeedText) > 0 {
			s.SeedText = s.SeedText[:len(s.SeedText)-1]
		}
		return actionNone
	case tcell.KeyRune:
	default:
		return actionNone
	}

	r := ev.Rune()
	switch {
	case r == 'q':
		return actionQuit
	case s.Running:
		return actionNone
	case r == 'r':
		return actionRun
	case r == '+':
		s.StepSeed(1)
	case r == '-':
		s.StepSeed(-1)
	case r >= '0' && r <= '9':
		if s.SeedText == "0" {
			s.SeedText = ""
		}
		if len(s.SeedText) < maxSeedDigits {
			s.SeedText += string(r)
		}
	}
	return actionNone
}

// begin resets the result area for a new run and returns its configuration
func (s *State) begin() optimizer.Config {
	cfg := s.Config
	cfg.Seed = s.Seed()
	s.SeedText = strconv.FormatInt(cfg.Seed, 10)

	s.Running = true
	s.Live = s.Live[:0]
	s.Report = nil
	s.Err = nil
	return cfg
}

// finish records the outcome of a run
func (s *State) finish(rep *report.Report, err error) {
	s.Running = false
	s.Report = rep
	s.Err = err
}
