package fitness

import (
	"fmt"

	"github.com/lixenwraith/bitga/genetic"
	"github.com/lixenwraith/bitga/genome"
)

// HammingTarget scores a genome by how close its weight is to Target
// score = Max - |weight - Target|
type HammingTarget struct {
	Length int
	Target int
	Max    int
}

// MaxDistance is the largest |weight - target| reachable at the given length
func MaxDistance(length, target int) int {
	return max(target, length-target)
}

// NewHammingTarget validates the problem so that every genome scores within [0, max]
func NewHammingTarget(length, target, maxFitness int) (HammingTarget, error) {
	if err := genetic.CheckPositive("chromosome_length", length); err != nil {
		return HammingTarget{}, err
	}
	if target < 0 || target > length {
		return HammingTarget{}, &genetic.ConfigError{
			Field:  "target_ones",
			Value:  target,
			Reason: fmt.Sprintf("must be within [0, %d]", length),
		}
	}
	if floor := MaxDistance(length, target); maxFitness < floor {
		return HammingTarget{}, &genetic.ConfigError{
			Field:  "max_fitness",
			Value:  maxFitness,
			Reason: fmt.Sprintf("must be at least %d so no genome scores below zero", floor),
		}
	}
	return HammingTarget{Length: length, Target: target, Max: maxFitness}, nil
}

// Evaluate returns the fitness of g; pure
func (h HammingTarget) Evaluate(g genome.Genome) int {
	d := g.Weight() - h.Target
	if d < 0 {
		d = -d
	}
	return h.Max - d
}

// Floor is the lowest attainable score
func (h HammingTarget) Floor() int {
	return h.Max - MaxDistance(h.Length, h.Target)
}

// IsOptimal reports whether g reaches Max
func (h HammingTarget) IsOptimal(g genome.Genome) bool {
	return g.Weight() == h.Target
}
