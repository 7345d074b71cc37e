// Command bitga evolves a bitstring toward a target number of one bits.
//
// With a terminal attached it opens an interactive viewer where the seed is
// edited and runs are started; otherwise it runs once and prints a text report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/lixenwraith/bitga/audio"
	"github.com/lixenwraith/bitga/genetic"
	"github.com/lixenwraith/bitga/metrics"
	"github.com/lixenwraith/bitga/optimizer"
	"github.com/lixenwraith/bitga/report"
	"github.com/lixenwraith/bitga/viewer"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries the collaborators shared by both front ends
type app struct {
	cfg      optimizer.Config
	opts     cliOptions
	recorder *metrics.Recorder
	player   *audio.Player
	stdout   io.Writer
	stderr   io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "bitga: %v\n", err)
		return exitConfig
	}
	if err := cfg.Resolved().Validate(); err != nil {
		fmt.Fprintf(stderr, "bitga: %v\n", err)
		return exitConfig
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if opts.show != "" {
		if err := showReport(stdout, opts.outDir, opts.show); err != nil {
			fmt.Fprintf(stderr, "bitga: %v\n", err)
			return exitRuntime
		}
		return exitOK
	}

	if opts.history > 0 {
		if err := printHistory(context.Background(), stdout, opts.outDir, opts.history); err != nil {
			fmt.Fprintf(stderr, "bitga: %v\n", err)
			return exitRuntime
		}
		return exitOK
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{cfg: cfg, opts: opts, stdout: stdout, stderr: stderr}

	if opts.metricsAddr != "" {
		shutdown, err := a.serveMetrics(opts.metricsAddr)
		if err != nil {
			fmt.Fprintf(stderr, "bitga: metrics: %v\n", err)
			return exitRuntime
		}
		defer shutdown()
	}

	audioCfg := audio.LoadConfig()
	if opts.sound {
		audioCfg.Enabled = true
	}
	a.player = audio.NewPlayer(audioCfg)
	defer a.player.Close()

	if useTUI(opts.ui) {
		return a.runTUI(ctx)
	}
	return a.runText(ctx)
}

// useTUI resolves -ui auto from whether stdin and stdout are terminals
func useTUI(mode string) bool {
	switch mode {
	case uiTUI:
		return true
	case uiText:
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (a *app) runOptions() []optimizer.Option {
	if a.recorder == nil {
		return nil
	}
	return []optimizer.Option{optimizer.WithObserver(a.recorder.Observe)}
}

// finish records a completed run in metrics and the report directory
func (a *app) finish(rep *report.Report) {
	if a.recorder != nil {
		a.recorder.RunFinished(rep.Verdict)
	}
	if a.opts.outDir == "" {
		return
	}

	m := report.NewManager(a.opts.outDir)
	if err := m.Save(rep); err != nil {
		log.Printf("[MAIN] save report: %v", err)
		return
	}
	plotPath, err := m.SavePlot(rep)
	if err != nil {
		log.Printf("[MAIN] save plot: %v", err)
		return
	}
	log.Printf("[MAIN] report %s saved to %s and %s", rep.RunID, m.FilePath(rep.RunID), plotPath)

	h, err := report.OpenHistory(a.opts.outDir)
	if err != nil {
		log.Printf("[MAIN] history: %v", err)
		return
	}
	defer h.Close()
	if err := h.Record(context.Background(), rep); err != nil {
		log.Printf("[MAIN] history: %v", err)
	}
}

// showReport prints a saved report in the text layout
func showReport(w io.Writer, dir, runID string) error {
	m := report.NewManager(dir)
	if !m.Exists(runID) {
		return fmt.Errorf("no report %s in %s", runID, dir)
	}
	rep, err := m.Load(runID)
	if err != nil {
		return err
	}
	return report.WriteText(w, rep)
}

// printHistory lists the most recent indexed runs
func printHistory(ctx context.Context, w io.Writer, dir string, limit int) error {
	h, err := report.OpenHistory(dir)
	if err != nil {
		return err
	}
	defer h.Close()

	entries, err := h.Recent(ctx, limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECORDED\tSEED\tPOP\tGENS\tBEST\tONES\tVERDICT\tRUN")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			e.RecordedAt.Format(time.DateTime), e.Seed, e.Population, e.Generations,
			e.BestFitness, e.Ones, e.Verdict, e.RunID)
	}
	return tw.Flush()
}

func (a *app) runText(ctx context.Context) int {
	res, err := optimizer.Run(ctx, a.cfg, a.runOptions()...)
	if err != nil {
		fmt.Fprintf(a.stderr, "bitga: %v\n", err)
		if errors.Is(err, genetic.ErrInvalidConfig) {
			return exitConfig
		}
		return exitRuntime
	}

	rep := report.New(a.cfg, res)
	if err := report.WriteText(a.stdout, rep); err != nil {
		fmt.Fprintf(a.stderr, "bitga: %v\n", err)
		return exitRuntime
	}

	a.finish(rep)
	if a.opts.outDir != "" {
		fmt.Fprintf(a.stdout, "\nReport: %s\n", report.NewManager(a.opts.outDir).FilePath(rep.RunID))
	}

	if err := a.player.Play(rep.Verdict); err != nil {
		log.Printf("[MAIN] audio: %v", err)
	}
	return exitOK
}

func (a *app) runTUI(ctx context.Context) (code int) {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(a.stderr, "Failed to initialize terminal: %v\n", err)
		return exitRuntime
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(a.stderr, "Failed to initialize terminal: %v\n", err)
		return exitRuntime
	}

	// Restore the terminal before reporting a crash so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(a.stderr, "\n\x1b[31mBITGA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(a.stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = exitRuntime
		}
	}()

	v := viewer.New(screen, a.cfg, viewer.Options{
		Player:     a.player,
		RunOptions: a.runOptions(),
		OnResult:   a.finish,
	})

	err = v.Run(ctx)
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(a.stderr, "bitga: %v\n", err)
		return exitRuntime
	}
	return exitOK
}

// serveMetrics starts the Prometheus endpoint and returns its shutdown func
func (a *app) serveMetrics(addr string) (func(), error) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, err
	}
	a.recorder = rec

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[METRICS] server: %v", err)
		}
	}()
	log.Printf("[METRICS] serving on %s/metrics", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
