package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bitga/genetic"
	"github.com/lixenwraith/bitga/genetic/fitness"
	"github.com/lixenwraith/bitga/parameter"
)

const (
	// AutoMutationRate resolves to 1/chromosome_length when the run starts
	AutoMutationRate = -1.0
	// AutoMaxFitness resolves to chromosome_length when the run starts
	AutoMaxFitness = -1
)

// Config is the immutable parameter set of one run
type Config struct {
	PopulationSize   int     `toml:"population_size"`
	ChromosomeLength int     `toml:"chromosome_length"`
	TargetOnes       int     `toml:"target_ones"`
	MaxFitness       int     `toml:"max_fitness"`
	Generations      int     `toml:"generations"`
	TournamentSize   int     `toml:"tournament_size"`
	CrossoverRate    float64 `toml:"crossover_rate"`
	MutationRate     float64 `toml:"mutation_rate"`
	Seed             int64   `toml:"seed"`
	Parallelism      int     `toml:"parallelism"`
}

// DefaultConfig returns the reference run: 300 x 80 bits, 50 generations, seed 42
func DefaultConfig() Config {
	return Config{
		PopulationSize:   parameter.GAPopulationSize,
		ChromosomeLength: parameter.GAChromosomeLength,
		TargetOnes:       parameter.GATargetOnes,
		MaxFitness:       AutoMaxFitness,
		Generations:      parameter.GAGenerations,
		TournamentSize:   parameter.GATournamentSize,
		CrossoverRate:    parameter.GACrossoverRate,
		MutationRate:     AutoMutationRate,
		Seed:             parameter.GASeed,
		Parallelism:      parameter.GAParallelism,
	}
}

// Resolved replaces the Auto values with their derived settings
func (c Config) Resolved() Config {
	if c.ChromosomeLength > 0 {
		if c.MutationRate == AutoMutationRate {
			c.MutationRate = 1.0 / float64(c.ChromosomeLength)
		}
		if c.MaxFitness == AutoMaxFitness {
			c.MaxFitness = c.ChromosomeLength
		}
	}
	return c
}

// Validate returns the first rejected field as a *genetic.ConfigError
// Auto values are resolved before checking
func (c Config) Validate() error {
	c = c.Resolved()

	if err := genetic.CheckPositive("population_size", c.PopulationSize); err != nil {
		return err
	}
	if _, err := fitness.NewHammingTarget(c.ChromosomeLength, c.TargetOnes, c.MaxFitness); err != nil {
		return err
	}
	if err := genetic.CheckPositive("generations", c.Generations); err != nil {
		return err
	}
	if err := genetic.CheckPositive("tournament_size", c.TournamentSize); err != nil {
		return err
	}
	if c.TournamentSize > c.PopulationSize {
		return &genetic.ConfigError{
			Field:  "tournament_size",
			Value:  c.TournamentSize,
			Reason: fmt.Sprintf("exceeds population size %d", c.PopulationSize),
		}
	}
	if err := genetic.CheckRate("crossover_rate", c.CrossoverRate); err != nil {
		return err
	}
	if err := genetic.CheckRate("mutation_rate", c.MutationRate); err != nil {
		return err
	}
	return genetic.CheckPositive("parallelism", c.Parallelism)
}

// EngineConfig projects the run configuration onto the engine
func (c Config) EngineConfig() genetic.EngineConfig {
	r := c.Resolved()
	return genetic.EngineConfig{
		PoolSize:     r.PopulationSize,
		Generations:  r.Generations,
		MutationRate: r.MutationRate,
		Parallelism:  r.Parallelism,
		Seed:         r.Seed,
	}
}

// LoadConfig decodes a TOML file over DefaultConfig; unknown keys are rejected
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}
