package genetic

import "math/rand/v2"

// Source is the random stream consumed by initializers and operators
// *rand.Rand satisfies it; tests may substitute a scripted sequence
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// IntN returns a uniform value in [0, n); panics if n <= 0
	IntN(n int) int
}

// NewSource returns an independent PCG generator for one run
// Identical seeds reproduce identical streams for identical call sequences
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}
