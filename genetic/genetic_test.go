package genetic

import (
	"testing"

	"github.com/lixenwraith/bitga/genome"
)

// scriptedSource replays fixed draws; IntN reduces the scripted value modulo n
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[s.ii] % n
	s.ii++
	return v
}

func mustGenome(t *testing.T, s string) genome.Genome {
	t.Helper()
	g, err := genome.FromString(s)
	if err != nil {
		t.Fatalf("bad genome literal %q: %v", s, err)
	}
	return g
}

func scoredPool(t *testing.T, data []string, scores []int) *Pool[genome.Genome, int] {
	t.Helper()
	pool := &Pool[genome.Genome, int]{}
	for i, d := range data {
		pool.Members = append(pool.Members, Candidate[genome.Genome, int]{Data: mustGenome(t, d), Score: scores[i]})
	}
	return pool
}

func TestTournamentSelector_FirstMaxTieBreak(t *testing.T) {
	pool := scoredPool(t, []string{"0001", "0010", "0100", "1000"}, []int{5, 9, 9, 3})
	sel := &TournamentSelector[genome.Genome, uint8, int]{TournamentSize: 3}

	// Draw order 1, 2, 0: members 1 and 2 tie at 9, the earlier draw wins
	rng := &scriptedSource{ints: []int{1, 2, 0}}
	winner := sel.Select(pool, rng)
	if winner.String() != "0010" {
		t.Errorf("expected member 1 (0010), got %s", winner)
	}

	// Draw order 2, 1: member 2 drawn first now wins the tie
	sel.TournamentSize = 2
	rng = &scriptedSource{ints: []int{2, 1}}
	if winner := sel.Select(pool, rng); winner.String() != "0100" {
		t.Errorf("expected member 2 (0100), got %s", winner)
	}
}

func TestTournamentSelector_ReturnsCopy(t *testing.T) {
	pool := scoredPool(t, []string{"1111", "0000"}, []int{4, 0})
	sel := &TournamentSelector[genome.Genome, uint8, int]{TournamentSize: 1}

	winner := sel.Select(pool, &scriptedSource{ints: []int{0}})
	winner[0] = 0

	if pool.Members[0].Data.String() != "1111" {
		t.Error("selection aliased pool storage")
	}
}

func TestTournamentSelector_WithReplacement(t *testing.T) {
	pool := scoredPool(t, []string{"1", "0"}, []int{1, 0})
	sel := &TournamentSelector[genome.Genome, uint8, int]{TournamentSize: 3}

	// Same index sampled three times is legal
	winner := sel.Select(pool, &scriptedSource{ints: []int{1, 1, 1}})
	if winner.String() != "0" {
		t.Errorf("expected repeated draw of member 1, got %s", winner)
	}
}

func TestTournamentSelector_Validate(t *testing.T) {
	sel := &TournamentSelector[genome.Genome, uint8, int]{TournamentSize: 4}
	if err := sel.Validate(3); err == nil {
		t.Error("expected error when tournament exceeds pool")
	}
	if err := sel.Validate(4); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	sel.TournamentSize = 0
	if err := sel.Validate(4); err == nil {
		t.Error("expected error for zero tournament size")
	}
}

func TestSinglePointCombiner_CutPoint(t *testing.T) {
	a := mustGenome(t, "111111")
	b := mustGenome(t, "000000")
	comb := &SinglePointCombiner[genome.Genome, uint8]{Rate: 1.0}

	// IntN(5) returns 2, so point = 3
	c1, c2 := comb.Combine(a, b, &scriptedSource{floats: []float64{0.5}, ints: []int{2}})

	if c1.String() != "111000" {
		t.Errorf("expected c1 111000, got %s", c1)
	}
	if c2.String() != "000111" {
		t.Errorf("expected c2 000111, got %s", c2)
	}
	if c1.Len() != 6 || c2.Len() != 6 {
		t.Error("children must keep parent length")
	}
}

func TestSinglePointCombiner_PointRange(t *testing.T) {
	a := mustGenome(t, "1111")
	b := mustGenome(t, "0000")
	comb := &SinglePointCombiner[genome.Genome, uint8]{Rate: 1.0}

	// Smallest and largest cut points still mix both parents
	c1, _ := comb.Combine(a, b, &scriptedSource{floats: []float64{0}, ints: []int{0}})
	if c1.String() != "1000" {
		t.Errorf("point 1: expected 1000, got %s", c1)
	}
	c1, _ = comb.Combine(a, b, &scriptedSource{floats: []float64{0}, ints: []int{2}})
	if c1.String() != "1110" {
		t.Errorf("point 3: expected 1110, got %s", c1)
	}
}

func TestSinglePointCombiner_NoRecombination(t *testing.T) {
	a := mustGenome(t, "1100")
	b := mustGenome(t, "0011")
	comb := &SinglePointCombiner[genome.Genome, uint8]{Rate: 0.9}

	rng := &scriptedSource{floats: []float64{0.95}}
	c1, c2 := comb.Combine(a, b, rng)

	if !c1.Equal(a) || !c2.Equal(b) {
		t.Errorf("expected verbatim copies, got %s %s", c1, c2)
	}
	if rng.ii != 0 {
		t.Error("cut point must not be drawn when copying")
	}

	c1[0] = 0
	if a[0] != 1 {
		t.Error("copy aliased parent storage")
	}

	// Rate 0 never recombines, even on a zero draw
	comb.Rate = 0
	c1, _ = comb.Combine(a, b, &scriptedSource{floats: []float64{0}})
	if !c1.Equal(a) {
		t.Error("rate 0 must copy parents")
	}
}

func TestSinglePointCombiner_SingleBit(t *testing.T) {
	a := mustGenome(t, "1")
	b := mustGenome(t, "0")
	comb := &SinglePointCombiner[genome.Genome, uint8]{Rate: 1.0}

	c1, c2 := comb.Combine(a, b, &scriptedSource{floats: []float64{0.1}})
	if c1.String() != "1" || c2.String() != "0" {
		t.Errorf("single-bit parents must be copied, got %s %s", c1, c2)
	}
}

func TestBitFlipPerturbator_Rates(t *testing.T) {
	p := &BitFlipPerturbator{}
	rng := NewSource(7)

	for trial := 0; trial < 200; trial++ {
		g := RandomBits(64)(rng)

		same := p.Perturb(g, 0, rng)
		if !same.Equal(g) {
			t.Fatalf("trial %d: rate 0 changed the genome", trial)
		}

		flipped := p.Perturb(g, 1, rng)
		for i := range g {
			if flipped[i] == g[i] {
				t.Fatalf("trial %d: rate 1 left bit %d unchanged", trial, i)
			}
		}
	}
}

func TestBitFlipPerturbator_DoesNotModifyInput(t *testing.T) {
	p := &BitFlipPerturbator{}
	g := mustGenome(t, "0000")

	out := p.Perturb(g, 1, &scriptedSource{floats: []float64{0, 0, 0, 0}})
	if g.String() != "0000" {
		t.Errorf("input modified: %s", g)
	}
	if out.String() != "1111" {
		t.Errorf("expected 1111, got %s", out)
	}
}

func TestBitFlipPerturbator_PerBitDraws(t *testing.T) {
	p := &BitFlipPerturbator{}
	g := mustGenome(t, "0101")

	rng := &scriptedSource{floats: []float64{0.01, 0.5, 0.02, 0.9}}
	out := p.Perturb(g, 0.05, rng)

	if out.String() != "1111" {
		t.Errorf("expected bits 0 and 2 flipped (1111), got %s", out)
	}
	if rng.fi != 4 {
		t.Errorf("expected one draw per bit, got %d", rng.fi)
	}
}

func TestRandomBits_Deterministic(t *testing.T) {
	initializer := RandomBits(80)

	a := initializer(NewSource(99))
	b := initializer(NewSource(99))
	if !a.Equal(b) {
		t.Error("same seed produced different genomes")
	}
	if a.Len() != 80 {
		t.Errorf("expected length 80, got %d", a.Len())
	}
	for i, bit := range a {
		if bit > 1 {
			t.Fatalf("bit %d holds %d", i, bit)
		}
	}
}

func TestSpliceAt(t *testing.T) {
	a := mustGenome(t, "10101")
	b := mustGenome(t, "01010")

	c := SpliceAt(a, b, 2)
	if c.String() != "10010" {
		t.Errorf("expected 10010, got %s", c)
	}
}
