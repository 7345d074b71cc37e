package genome

import "testing"

func TestFromString_RoundTrip(t *testing.T) {
	g, err := FromString("0110100")
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	if g.Len() != 7 {
		t.Errorf("expected length 7, got %d", g.Len())
	}
	if g.String() != "0110100" {
		t.Errorf("expected 0110100, got %s", g.String())
	}
	if !g.Has(1) || g.Has(0) {
		t.Error("bit positions decoded in the wrong order")
	}
}

func TestFromString_InvalidCharacter(t *testing.T) {
	if _, err := FromString("01x1"); err == nil {
		t.Error("expected error for invalid character")
	}
}

func TestWeightAndZeros(t *testing.T) {
	g, _ := FromString("1101001110")
	if g.Weight() != 6 {
		t.Errorf("expected weight 6, got %d", g.Weight())
	}
	if g.Zeros() != 4 {
		t.Errorf("expected 4 zeros, got %d", g.Zeros())
	}
	if New(16).Weight() != 0 {
		t.Error("new genome should be all zeros")
	}
}

func TestClone_Independent(t *testing.T) {
	g, _ := FromString("1010")
	c := g.Clone()
	c[0] = 0

	if g[0] != 1 {
		t.Error("mutating clone changed the original")
	}
	if Genome(nil).Clone() != nil {
		t.Error("clone of nil should be nil")
	}
}

func TestFlipped_LeavesInputUntouched(t *testing.T) {
	g, _ := FromString("0000")
	f := g.Flipped(2)

	if f.String() != "0010" {
		t.Errorf("expected 0010, got %s", f.String())
	}
	if g.String() != "0000" {
		t.Errorf("input modified: %s", g.String())
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromString("0101")
	b, _ := FromString("0101")
	c, _ := FromString("0100")

	if !a.Equal(b) {
		t.Error("expected equal genomes")
	}
	if a.Equal(c) {
		t.Error("expected unequal genomes")
	}
	if a.Equal(a[:3]) {
		t.Error("different lengths must not be equal")
	}
}
