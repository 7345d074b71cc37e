// Package genome provides the fixed-length bitstring encoding evolved by the
// genetic engine. A Genome is a value: every constructor and combinator here
// returns freshly allocated storage and never aliases its arguments.
package genome

import (
	"fmt"
	"strings"
)

// Genome is an ordered sequence of bits, one byte per bit holding 0 or 1
type Genome []uint8

// New returns an all-zero genome of the given length
func New(length int) Genome {
	return make(Genome, length)
}

// FromString parses a string of '0' and '1' characters, index 0 first
func FromString(s string) (Genome, error) {
	g := make(Genome, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			g[i] = 1
		default:
			return nil, fmt.Errorf("genome: invalid character %q at position %d", s[i], i)
		}
	}
	return g, nil
}

// Len returns the number of bits
func (g Genome) Len() int {
	return len(g)
}

// Has reports whether the bit at pos is one
func (g Genome) Has(pos int) bool {
	return g[pos] != 0
}

// Weight returns the Hamming weight (count of one bits)
func (g Genome) Weight() int {
	n := 0
	for _, b := range g {
		n += int(b & 1)
	}
	return n
}

// Zeros returns the count of zero bits
func (g Genome) Zeros() int {
	return len(g) - g.Weight()
}

// Clone returns an independent copy
func (g Genome) Clone() Genome {
	if g == nil {
		return nil
	}
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

// Flipped returns a copy with the bit at pos inverted
func (g Genome) Flipped(pos int) Genome {
	c := g.Clone()
	c[pos] ^= 1
	return c
}

// Equal reports whether two genomes hold the same bits
func (g Genome) Equal(other Genome) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the genome as '0'/'1' characters, index 0 first
func (g Genome) String() string {
	var b strings.Builder
	b.Grow(len(g))
	for _, bit := range g {
		if bit != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
