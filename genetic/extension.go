package genetic

import (
	"github.com/lixenwraith/bitga/genome"
)

// --- Bitstring Operators ---

// RandomBits returns an initializer drawing each bit independently via IntN(2)
func RandomBits(length int) InitializerFunc[genome.Genome] {
	return func(rng Source) genome.Genome {
		g := genome.New(length)
		for i := range g {
			g[i] = uint8(rng.IntN(2))
		}
		return g
	}
}

// BitFlipPerturbator flips each bit independently with probability rate
type BitFlipPerturbator struct{}

// Perturb draws one float per position, in order, and flips the bit when below rate
func (bfp *BitFlipPerturbator) Perturb(solution genome.Genome, rate float64, rng Source) genome.Genome {
	mutated := solution.Clone()
	for i := range mutated {
		if rng.Float64() < rate {
			mutated[i] ^= 1
		}
	}
	return mutated
}
