package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/bitga/optimizer"
)

const (
	uiAuto = "auto"
	uiTUI  = "tui"
	uiText = "text"
)

// cliOptions are the settings that do not belong to a run
type cliOptions struct {
	configPath  string
	outDir      string
	ui          string
	metricsAddr string
	history     int
	show        string
	sound       bool
	debug       bool
}

// parseArgs layers defaults, the optional TOML file and explicitly set flags
func parseArgs(args []string, output io.Writer) (cliOptions, optimizer.Config, error) {
	def := optimizer.DefaultConfig()
	var opts cliOptions

	fs := flag.NewFlagSet("bitga", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.configPath, "config", "", "TOML run configuration file")
	fs.StringVar(&opts.outDir, "out", "", "Directory for the run report (TOML) and convergence plot (PNG)")
	fs.StringVar(&opts.ui, "ui", uiAuto, "Front end: auto, tui, text")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	fs.IntVar(&opts.history, "history", 0, "List the N most recent runs indexed under -out and exit")
	fs.StringVar(&opts.show, "show", "", "Print the saved report with this run id from -out and exit")
	fs.BoolVar(&opts.sound, "sound", false, "Play a sound announcing the verdict")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug logs to "+logDir+"/"+logFileName)

	seed := fs.Int64("seed", def.Seed, "Random seed; identical seeds reproduce identical runs")
	population := fs.Int("population", def.PopulationSize, "Population size")
	length := fs.Int("length", def.ChromosomeLength, "Chromosome length in bits")
	target := fs.Int("target", def.TargetOnes, "Target number of one bits")
	maxFitness := fs.Int("max-fitness", def.MaxFitness, "Fitness of a genome with exactly target ones (-1 = length)")
	generations := fs.Int("generations", def.Generations, "Number of generations")
	tournament := fs.Int("tournament", def.TournamentSize, "Tournament size")
	crossover := fs.Float64("crossover", def.CrossoverRate, "Crossover probability")
	mutation := fs.Float64("mutation", def.MutationRate, "Per-bit mutation probability (-1 = 1/length)")
	parallel := fs.Int("parallel", def.Parallelism, "Concurrent fitness evaluation workers")

	if err := fs.Parse(args); err != nil {
		return opts, def, err
	}
	if fs.NArg() > 0 {
		return opts, def, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if opts.history < 0 {
		return opts, def, fmt.Errorf("invalid -history %d: must not be negative", opts.history)
	}
	if opts.history > 0 && opts.outDir == "" {
		return opts, def, fmt.Errorf("-history requires -out")
	}
	if opts.show != "" && opts.outDir == "" {
		return opts, def, fmt.Errorf("-show requires -out")
	}

	switch opts.ui {
	case uiAuto, uiTUI, uiText:
	default:
		return opts, def, fmt.Errorf("invalid -ui %q: want auto, tui or text", opts.ui)
	}

	cfg := def
	if opts.configPath != "" {
		loaded, err := optimizer.LoadConfig(opts.configPath)
		if err != nil {
			return opts, def, err
		}
		cfg = loaded
	}

	// Flags override the file only when given on the command line
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "population":
			cfg.PopulationSize = *population
		case "length":
			cfg.ChromosomeLength = *length
		case "target":
			cfg.TargetOnes = *target
		case "max-fitness":
			cfg.MaxFitness = *maxFitness
		case "generations":
			cfg.Generations = *generations
		case "tournament":
			cfg.TournamentSize = *tournament
		case "crossover":
			cfg.CrossoverRate = *crossover
		case "mutation":
			cfg.MutationRate = *mutation
		case "parallel":
			cfg.Parallelism = *parallel
		}
	})

	return opts, cfg, nil
}
