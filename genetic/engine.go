package genetic

import (
	"context"
	"fmt"
	"slices"

	conc "github.com/sourcegraph/conc/pool"

	"github.com/lixenwraith/bitga/parameter"
)

// --- Algorithm Engine ---

// Engine is the generational genetic algorithm
// It coordinates all operators; every Run starts from a fresh Source seeded from the config
type Engine[S ~[]E, E any, F Numeric] struct {
	// Core operators
	evaluator   EvaluatorFunc[S, F]
	initializer InitializerFunc[S]
	selector    Selector[S, F]
	combiner    Combiner[S]
	perturbator Perturbator[S]
	observer    ObserverFunc[F]

	// Configuration
	config EngineConfig
}

// EngineConfig holds configuration parameters for the algorithm
type EngineConfig struct {
	// PoolSize is the number of candidates maintained in each generation
	PoolSize int
	// Generations is the exact number of evaluate/reproduce steps
	Generations int
	// MutationRate is the per-element perturbation probability (0-1)
	MutationRate float64
	// Parallelism bounds concurrent fitness evaluations
	Parallelism int
	// Seed for the run's random source; every value, including 0, is a valid seed
	Seed int64
}

// NewEngine creates a new genetic algorithm engine with the specified operators
func NewEngine[S ~[]E, E any, F Numeric](
	evaluator EvaluatorFunc[S, F],
	initializer InitializerFunc[S],
	selector Selector[S, F],
	combiner Combiner[S],
	perturbator Perturbator[S],
	config EngineConfig,
) *Engine[S, E, F] {
	return &Engine[S, E, F]{
		evaluator:   evaluator,
		initializer: initializer,
		selector:    selector,
		combiner:    combiner,
		perturbator: perturbator,
		config:      config,
	}
}

// SetObserver registers a per-generation progress callback, called on the Run goroutine
func (e *Engine[S, E, F]) SetObserver(observer ObserverFunc[F]) {
	e.observer = observer
}

// Validate checks the configuration and every operator carrying parameters
func (e *Engine[S, E, F]) Validate() error {
	if e.evaluator == nil || e.initializer == nil || e.selector == nil || e.combiner == nil || e.perturbator == nil {
		return &ConfigError{Field: "operators", Value: nil, Reason: "all operators are required"}
	}
	if err := CheckPositive("population_size", e.config.PoolSize); err != nil {
		return err
	}
	if err := CheckPositive("generations", e.config.Generations); err != nil {
		return err
	}
	if err := CheckRate("mutation_rate", e.config.MutationRate); err != nil {
		return err
	}
	if err := CheckPositive("parallelism", e.config.Parallelism); err != nil {
		return err
	}

	for _, op := range []any{e.selector, e.combiner, e.perturbator} {
		if v, ok := op.(validator); ok {
			if err := v.Validate(e.config.PoolSize); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run executes exactly config.Generations generations
// Cancellation is honored between generations only; a cancelled run returns no result
func (e *Engine[S, E, F]) Run(ctx context.Context) (*Result[S, F], error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	rng := NewSource(e.config.Seed)
	pool := e.initializePool(rng)

	result := &Result[S, F]{
		Curve:   make([]F, 0, e.config.Generations),
		History: make([]PoolStats[F], 0, e.config.Generations),
	}
	hasBest := false

	for gen := 0; gen < e.config.Generations; gen++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("run stopped before generation %d: %w", gen+1, ctx.Err())
		default:
		}

		e.evaluate(pool)
		pool.Stats = calculateStats(pool.Members)

		genBest := pool.Members[pool.Stats.BestIndex]
		result.Curve = append(result.Curve, genBest.Score)
		result.History = append(result.History, pool.Stats)

		// Strict improvement only: best-ever never decreases and keeps the earliest holder
		if !hasBest || genBest.Score > result.BestScore {
			result.Best = slices.Clone(genBest.Data)
			result.BestScore = genBest.Score
			hasBest = true
		}

		if e.observer != nil {
			e.observer(GenerationReport[F]{
				Generation: gen + 1,
				Stats:      pool.Stats,
				BestEver:   result.BestScore,
			})
		}

		if gen == e.config.Generations-1 {
			break
		}

		next, err := e.reproduce(pool, rng)
		if err != nil {
			return nil, err
		}
		pool = next
	}

	return result, nil
}

// initializePool draws the initial population sequentially from the run source
func (e *Engine[S, E, F]) initializePool(rng Source) *Pool[S, F] {
	candidates := make([]Candidate[S, F], e.config.PoolSize)
	for i := range candidates {
		candidates[i].Data = e.initializer(rng)
	}

	return &Pool[S, F]{
		Members:    candidates,
		Generation: 0,
	}
}

// evaluate scores every member in place
// Each worker owns a contiguous index range, so no member is written twice
func (e *Engine[S, E, F]) evaluate(pool *Pool[S, F]) {
	members := pool.Members
	workers := min(e.config.Parallelism, len(members))

	if workers <= 1 || len(members) < parameter.GAParallelThreshold {
		for i := range members {
			members[i].Score = e.evaluator(members[i].Data)
		}
		return
	}

	chunk := (len(members) + workers - 1) / workers
	p := conc.New().WithMaxGoroutines(workers)
	for start := 0; start < len(members); start += chunk {
		end := min(start+chunk, len(members))
		p.Go(func() {
			for i := start; i < end; i++ {
				members[i].Score = e.evaluator(members[i].Data)
			}
		})
	}
	p.Wait()
}

// reproduce builds the next generation from the evaluated pool
// Per pair: select, select, combine, perturb first child, perturb second child
func (e *Engine[S, E, F]) reproduce(pool *Pool[S, F], rng Source) (*Pool[S, F], error) {
	size := e.config.PoolSize
	genomeLen := len(pool.Members[0].Data)
	nextGen := make([]Candidate[S, F], 0, size+1)

	for len(nextGen) < size {
		parent1 := e.selector.Select(pool, rng)
		parent2 := e.selector.Select(pool, rng)

		child1, child2 := e.combiner.Combine(parent1, parent2, rng)

		nextGen = append(nextGen,
			Candidate[S, F]{Data: e.perturbator.Perturb(child1, e.config.MutationRate, rng)},
			Candidate[S, F]{Data: e.perturbator.Perturb(child2, e.config.MutationRate, rng)},
		)
	}

	nextGen, err := trimBrood(nextGen, size, genomeLen, pool.Generation+1)
	if err != nil {
		return nil, err
	}

	return &Pool[S, F]{
		Members:    nextGen,
		Generation: pool.Generation + 1,
	}, nil
}

// trimBrood cuts the bred children to the population size and checks the next generation
// Pairwise breeding overshoots by at most one child, and only for odd sizes
func trimBrood[S ~[]E, E any, F Numeric](children []Candidate[S, F], size, genomeLen, gen int) ([]Candidate[S, F], error) {
	if surplus := len(children) - size; surplus < 0 || surplus > size%2 {
		return nil, fmt.Errorf("%w: generation %d bred %d children for population %d",
			ErrInvariant, gen, len(children), size)
	}
	children = children[:size]

	for i, c := range children {
		if len(c.Data) != genomeLen {
			return nil, fmt.Errorf("%w: generation %d child %d has length %d, want %d",
				ErrInvariant, gen, i, len(c.Data), genomeLen)
		}
	}
	return children, nil
}
