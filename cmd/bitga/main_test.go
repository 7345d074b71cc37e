package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/bitga/optimizer"
	"github.com/lixenwraith/bitga/report"
)

func TestParseArgs_Defaults(t *testing.T) {
	opts, cfg, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != optimizer.DefaultConfig() {
		t.Errorf("expected default config, got %+v", cfg)
	}
	if opts.ui != uiAuto || opts.debug || opts.sound || opts.outDir != "" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestParseArgs_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	content := "seed = 7\npopulation_size = 120\ngenerations = 20\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, cfg, err := parseArgs([]string{"-config", path, "-seed", "0", "-mutation", "0.02", "-ui", "text"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Seed != 0 {
		t.Errorf("explicit -seed 0 must override the file, got %d", cfg.Seed)
	}
	if cfg.PopulationSize != 120 || cfg.Generations != 20 {
		t.Errorf("file values lost: population %d, generations %d", cfg.PopulationSize, cfg.Generations)
	}
	if cfg.MutationRate != 0.02 {
		t.Errorf("expected mutation 0.02, got %v", cfg.MutationRate)
	}
	if cfg.TournamentSize != optimizer.DefaultConfig().TournamentSize {
		t.Error("unset flag must not override defaults")
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":   {"-nope"},
		"bad ui":         {"-ui", "gui"},
		"positional":     {"extra"},
		"missing config": {"-config", filepath.Join(t.TempDir(), "absent.toml")},
		"history no out": {"-history", "3"},
		"show no out":    {"-show", "abc"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := parseArgs(args, io.Discard); err == nil {
				t.Errorf("expected error for %v", args)
			}
		})
	}
}

func TestRun_TextMode(t *testing.T) {
	t.Setenv("BITGA_AUDIO_ENABLED", "false")
	outDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-ui", "text", "-population", "40", "-generations", "8", "-out", outDir}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"Best Individual Found", "gen   8:", "Report: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "Optimal solution found") && !strings.Contains(out, "Near-optimal solution found") {
		t.Error("verdict line missing")
	}

	tomls, _ := filepath.Glob(filepath.Join(outDir, "*.toml"))
	pngs, _ := filepath.Glob(filepath.Join(outDir, "*.png"))
	if len(tomls) != 1 || len(pngs) != 1 {
		t.Fatalf("expected one report and one plot, got %v %v", tomls, pngs)
	}

	runID := strings.TrimSuffix(filepath.Base(tomls[0]), ".toml")
	rep, err := report.NewManager(outDir).Load(runID)
	if err != nil {
		t.Fatalf("load saved report: %v", err)
	}
	if rep.Config.Generations != 8 || len(rep.Curve) != 8 {
		t.Errorf("saved report has wrong run shape: %+v", rep)
	}

	// The run is indexed and listed by -history
	stdout.Reset()
	if code := run([]string{"-history", "5", "-out", outDir}, &stdout, &stderr); code != exitOK {
		t.Fatalf("history exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), runID) {
		t.Errorf("history does not list run %s:\n%s", runID, stdout.String())
	}

	// -show reprints the saved report; an unknown id is a runtime error
	stdout.Reset()
	if code := run([]string{"-show", runID, "-out", outDir}, &stdout, &stderr); code != exitOK {
		t.Fatalf("show exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Best Individual Found") || !strings.Contains(stdout.String(), "gen   8:") {
		t.Errorf("show output incomplete:\n%s", stdout.String())
	}
	stderr.Reset()
	if code := run([]string{"-show", "missing", "-out", outDir}, &stdout, &stderr); code != exitRuntime {
		t.Errorf("unknown run id: expected exit %d, got %d", exitRuntime, code)
	}
	if !strings.Contains(stderr.String(), "no report missing") {
		t.Errorf("unexpected error output %q", stderr.String())
	}
}

func TestRun_ExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-ui", "text", "-population", "0"}, &stdout, &stderr); code != exitConfig {
		t.Errorf("invalid population: expected exit %d, got %d", exitConfig, code)
	}
	if !strings.Contains(stderr.String(), "population_size") {
		t.Errorf("expected field name in error, got %q", stderr.String())
	}

	if code := run([]string{"-ui", "bogus"}, &stdout, &stderr); code != exitConfig {
		t.Errorf("bad flag: expected exit %d, got %d", exitConfig, code)
	}
	if code := run([]string{"-h"}, &stdout, &stderr); code != exitOK {
		t.Errorf("help: expected exit %d, got %d", exitOK, code)
	}
}
