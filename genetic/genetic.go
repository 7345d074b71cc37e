// Package genetic provides a generic, seed-reproducible genetic algorithm engine
//  1. Every run owns its random Source; no package-level random state is read
//  2. Operators return freshly allocated solutions and never modify their inputs
//  3. Ties are broken by first occurrence (selection draw order, pool index order)
//  4. Generations are strictly sequential; evaluation inside a generation may fan out
package genetic

import (
	"fmt"
	"slices"
)

// --- Concrete Operator Implementations ---

// TournamentSelector implements tournament selection with replacement
// Samples TournamentSize members uniformly and returns the best of them
type TournamentSelector[S ~[]E, E any, F Numeric] struct {
	// TournamentSize is the number of candidates competing in each tournament
	TournamentSize int
}

// Validate rejects tournaments that cannot be drawn from the pool
func (ts *TournamentSelector[S, E, F]) Validate(poolSize int) error {
	if err := CheckPositive("tournament_size", ts.TournamentSize); err != nil {
		return err
	}
	if ts.TournamentSize > poolSize {
		return &ConfigError{
			Field:  "tournament_size",
			Value:  ts.TournamentSize,
			Reason: fmt.Sprintf("exceeds population size %d", poolSize),
		}
	}
	return nil
}

// Select runs one tournament; the winner is the first sampled member holding the highest score
func (ts *TournamentSelector[S, E, F]) Select(pool *Pool[S, F], rng Source) S {
	poolSize := len(pool.Members)

	winner := rng.IntN(poolSize)
	for i := 1; i < ts.TournamentSize; i++ {
		idx := rng.IntN(poolSize)
		// Strict comparison keeps the earliest draw on ties
		if pool.Members[idx].Score > pool.Members[winner].Score {
			winner = idx
		}
	}

	return slices.Clone(pool.Members[winner].Data)
}

// SinglePointCombiner performs probabilistic single-point crossover
// With probability 1-Rate the parents are copied through unchanged
type SinglePointCombiner[S ~[]E, E any] struct {
	// Rate is the probability a pair is recombined (0-1)
	Rate float64
}

// Validate checks the crossover probability
func (sc *SinglePointCombiner[S, E]) Validate(int) error {
	return CheckRate("crossover_rate", sc.Rate)
}

// Combine draws one float for the recombination decision and, when recombining,
// one cut point in [1, len-1] so each child inherits from both parents
func (sc *SinglePointCombiner[S, E]) Combine(a, b S, rng Source) (S, S) {
	length := min(len(a), len(b))

	if rng.Float64() >= sc.Rate || length < 2 {
		return slices.Clone(a), slices.Clone(b)
	}

	point := 1 + rng.IntN(length-1)
	return SpliceAt(a, b, point), SpliceAt(b, a, point)
}

// SpliceAt returns head[:point] followed by tail[point:] in new storage
func SpliceAt[S ~[]E, E any](head, tail S, point int) S {
	length := min(len(head), len(tail))
	child := make(S, length)
	copy(child[:point], head[:point])
	copy(child[point:], tail[point:length])
	return child
}
