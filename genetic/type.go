package genetic

// --- Core Type Constraints ---

// Numeric constrains types to numeric values for fitness scores
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// --- Core Data Structures ---

// Candidate is one population member with its evaluated score
// S is the solution encoding, F is the fitness score type
type Candidate[S any, F Numeric] struct {
	// Data holds the encoded solution; owned exclusively by this candidate
	Data S
	// Score is the fitness of Data for the current generation (higher = better)
	Score F
}

// Pool is the population of a single generation
type Pool[S any, F Numeric] struct {
	// Members contains all candidates in this pool, in breeding order
	Members []Candidate[S, F]
	// Generation is the zero-based index of this pool
	Generation int
	// Stats is filled once the pool has been evaluated
	Stats PoolStats[F]
}

// PoolStats summarizes one evaluated generation
type PoolStats[F Numeric] struct {
	// BestIndex is the first member index holding BestScore
	BestIndex  int
	BestScore  F
	WorstScore F
	Mean       float64
	StdDev     float64
	Size       int
}

// GenerationReport is delivered to the observer after each generation is evaluated
type GenerationReport[F Numeric] struct {
	// Generation is 1-indexed, matching the convergence curve axis
	Generation int
	Stats      PoolStats[F]
	// BestEver is the running best score including this generation
	BestEver F
}

// Result is the outcome of a completed run
type Result[S any, F Numeric] struct {
	// Best is an independent copy of the best-ever individual
	Best      S
	BestScore F
	// Curve holds the per-generation best score, one entry per generation
	Curve []F
	// History holds the full statistics of every generation
	History []PoolStats[F]
}

// --- Function Types ---

// EvaluatorFunc calculates the fitness score for a solution; must be pure
type EvaluatorFunc[S any, F Numeric] func(solution S) F

// InitializerFunc creates one random initial solution
type InitializerFunc[S any] func(rng Source) S

// ObserverFunc receives per-generation progress on the run goroutine
type ObserverFunc[F Numeric] func(report GenerationReport[F])

// --- Core Operators as Interfaces ---

// Selector chooses one parent from an evaluated pool
type Selector[S any, F Numeric] interface {
	// Select returns an independent copy of the chosen member's solution
	// The pool must not be modified
	Select(pool *Pool[S, F], rng Source) S
}

// Combiner is the recombination operator
type Combiner[S any] interface {
	// Combine creates two offspring in new storage from two parents
	Combine(a, b S, rng Source) (S, S)
}

// Perturbator is the mutation operator
type Perturbator[S any] interface {
	// Perturb returns a mutated copy of solution; solution itself is not modified
	// The rate parameter is the per-element mutation probability (0-1)
	Perturb(solution S, rate float64, rng Source) S
}

// validator is implemented by operators carrying their own parameters
type validator interface {
	Validate(poolSize int) error
}
