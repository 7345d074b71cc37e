package viewer

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bitga/audio"
	"github.com/lixenwraith/bitga/optimizer"
	"github.com/lixenwraith/bitga/parameter"
	"github.com/lixenwraith/bitga/report"
)

// Options wires the viewer into the rest of the program
type Options struct {
	// Player announces verdicts; nil is silent
	Player *audio.Player
	// RunOptions are passed to every optimizer.Run
	RunOptions []optimizer.Option
	// OnResult is called on the event loop goroutine after each successful run
	OnResult func(*report.Report)
}

type outcome struct {
	report *report.Report
	err    error
}

// Viewer owns a screen and the state drawn on it
type Viewer struct {
	screen tcell.Screen
	state  *State
	opts   Options

	// Per-run channels; nil while idle
	progress chan int
	results  chan outcome
	cancel   context.CancelFunc
}

// New creates a viewer on an initialized screen
func New(screen tcell.Screen, cfg optimizer.Config, opts Options) *Viewer {
	return &Viewer{
		screen: screen,
		state:  NewState(cfg),
		opts:   opts,
	}
}

// State exposes the viewer state for inspection
func (v *Viewer) State() *State {
	return v.state
}

// Run processes events until the user quits or ctx is cancelled
// A run in progress is cancelled at its next generation boundary
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.ViewerFrameInterval)
	defer ticker.Stop()
	defer v.stopRun()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	Draw(v.screen, v.state)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.handleEvent(ctx, ev) {
				return nil
			}
			Draw(v.screen, v.state)

		case best := <-v.progress:
			v.state.Live = append(v.state.Live, best)

		case out := <-v.results:
			v.completeRun(out)
			Draw(v.screen, v.state)

		case <-ticker.C:
			if v.state.Running {
				Draw(v.screen, v.state)
			}
		}
	}
}

// handleEvent returns false when the loop should exit
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch v.state.handleKey(ev) {
		case actionQuit:
			return false
		case actionRun:
			v.startRun(ctx)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// startRun launches one optimizer run on its own goroutine
func (v *Viewer) startRun(ctx context.Context) {
	cfg := v.state.begin()
	runCtx, cancel := context.WithCancel(ctx)

	progress := make(chan int, parameter.ViewerProgressBuffer)
	results := make(chan outcome, 1)
	v.progress, v.results, v.cancel = progress, results, cancel

	opts := append([]optimizer.Option{
		optimizer.WithObserver(func(r optimizer.GenerationReport) {
			select {
			case progress <- r.Stats.BestScore:
			case <-runCtx.Done():
			}
		}),
	}, v.opts.RunOptions...)

	go func() {
		res, err := optimizer.Run(runCtx, cfg, opts...)
		if err != nil {
			results <- outcome{err: err}
			return
		}
		results <- outcome{report: report.New(cfg, res)}
	}()
}

// completeRun drains progress sent before the result and records the outcome
func (v *Viewer) completeRun(out outcome) {
	for drained := false; !drained; {
		select {
		case best := <-v.progress:
			v.state.Live = append(v.state.Live, best)
		default:
			drained = true
		}
	}

	v.cancel()
	v.progress, v.results, v.cancel = nil, nil, nil
	v.state.finish(out.report, out.err)

	if out.err != nil {
		log.Printf("[VIEWER] run failed: %v", out.err)
		return
	}
	if v.opts.OnResult != nil {
		v.opts.OnResult(out.report)
	}
	if v.opts.Player != nil && v.opts.Player.Enabled() {
		go func(verdict report.Verdict) {
			if err := v.opts.Player.Play(verdict); err != nil {
				log.Printf("[VIEWER] audio: %v", err)
			}
		}(out.report.Verdict)
	}
}

func (v *Viewer) stopRun() {
	if v.cancel != nil {
		v.cancel()
	}
}
