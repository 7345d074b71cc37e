// Package optimizer runs the bitstring genetic search end to end:
// it validates a Config, wires the Hamming-target fitness and the bitstring
// operators into a genetic.Engine, and returns the best individual, its
// fitness and the per-generation convergence curve.
package optimizer

import (
	"context"
	"fmt"
	"log"

	"github.com/lixenwraith/bitga/genetic"
	"github.com/lixenwraith/bitga/genetic/fitness"
	"github.com/lixenwraith/bitga/genome"
)

// GenerationReport is the per-generation progress delivered to observers
type GenerationReport = genetic.GenerationReport[int]

// Result is the outcome of one run, owned by the caller
type Result struct {
	// Best is an independent copy of the best-ever individual
	Best        genome.Genome
	BestFitness int
	// Curve is the best fitness of each generation, len == Config.Generations
	Curve   []int
	History []genetic.PoolStats[int]
}

// Ones returns the Hamming weight of the best individual
func (r *Result) Ones() int {
	return r.Best.Weight()
}

// Zeros returns the zero count of the best individual
func (r *Result) Zeros() int {
	return r.Best.Zeros()
}

// Option customizes a run
type Option func(*runOptions)

type runOptions struct {
	observers []genetic.ObserverFunc[int]
}

// WithObserver adds a per-generation callback; observers run on the Run goroutine, in order
func WithObserver(observer genetic.ObserverFunc[int]) Option {
	return func(o *runOptions) {
		if observer != nil {
			o.observers = append(o.observers, observer)
		}
	}
}

// Run validates cfg and executes one seeded run
// Configuration errors are returned unwrapped (errors.Is genetic.ErrInvalidConfig)
func Run(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	target, err := fitness.NewHammingTarget(cfg.ChromosomeLength, cfg.TargetOnes, cfg.MaxFitness)
	if err != nil {
		return nil, err
	}

	engine := genetic.NewEngine[genome.Genome, uint8, int](
		target.Evaluate,
		genetic.RandomBits(cfg.ChromosomeLength),
		&genetic.TournamentSelector[genome.Genome, uint8, int]{TournamentSize: cfg.TournamentSize},
		&genetic.SinglePointCombiner[genome.Genome, uint8]{Rate: cfg.CrossoverRate},
		&genetic.BitFlipPerturbator{},
		cfg.EngineConfig(),
	)

	engine.SetObserver(func(r GenerationReport) {
		log.Printf("[GA] seed=%d gen=%d best=%d mean=%.2f std=%.2f best_ever=%d",
			cfg.Seed, r.Generation, r.Stats.BestScore, r.Stats.Mean, r.Stats.StdDev, r.BestEver)
		for _, obs := range o.observers {
			obs(r)
		}
	})

	log.Printf("[GA] run start seed=%d population=%d length=%d target=%d generations=%d",
		cfg.Seed, cfg.PopulationSize, cfg.ChromosomeLength, cfg.TargetOnes, cfg.Generations)

	res, err := engine.Run(ctx)
	if err != nil {
		log.Printf("[GA] run failed seed=%d: %v", cfg.Seed, err)
		return nil, fmt.Errorf("run seed %d: %w", cfg.Seed, err)
	}

	log.Printf("[GA] run done seed=%d best=%d ones=%d", cfg.Seed, res.BestScore, res.Best.Weight())

	return &Result{
		Best:        res.Best,
		BestFitness: res.BestScore,
		Curve:       res.Curve,
		History:     res.History,
	}, nil
}
