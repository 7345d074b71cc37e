package fitness

import (
	"errors"
	"testing"

	"github.com/lixenwraith/bitga/genetic"
	"github.com/lixenwraith/bitga/genome"
)

func ones(length, n int) genome.Genome {
	g := genome.New(length)
	for i := 0; i < n; i++ {
		g[i] = 1
	}
	return g
}

func TestHammingTarget_PeaksAtTarget(t *testing.T) {
	h, err := NewHammingTarget(80, 40, 80)
	if err != nil {
		t.Fatalf("NewHammingTarget failed: %v", err)
	}

	if v := h.Evaluate(ones(80, 40)); v != 80 {
		t.Errorf("expected 80 at target weight, got %d", v)
	}
	if v := h.Evaluate(ones(80, 37)); v != 77 {
		t.Errorf("expected 77 at weight 37, got %d", v)
	}
	if v := h.Evaluate(ones(80, 45)); v != 75 {
		t.Errorf("expected 75 at weight 45, got %d", v)
	}
}

func TestHammingTarget_BoundsOverAllWeights(t *testing.T) {
	h, _ := NewHammingTarget(80, 40, 80)

	for w := 0; w <= 80; w++ {
		g := ones(80, w)
		v := h.Evaluate(g)
		if v < 0 || v > h.Max {
			t.Errorf("weight %d: fitness %d outside [0, %d]", w, v, h.Max)
		}
		if v < h.Floor() {
			t.Errorf("weight %d: fitness %d below floor %d", w, v, h.Floor())
		}
		if (v == h.Max) != (w == h.Target) {
			t.Errorf("weight %d: max fitness must occur exactly at target", w)
		}
		if h.IsOptimal(g) != (w == h.Target) {
			t.Errorf("weight %d: IsOptimal mismatch", w)
		}
	}

	if h.Floor() != 40 {
		t.Errorf("expected floor 40, got %d", h.Floor())
	}
}

func TestHammingTarget_AsymmetricTarget(t *testing.T) {
	h, err := NewHammingTarget(10, 2, 8)
	if err != nil {
		t.Fatalf("NewHammingTarget failed: %v", err)
	}
	if v := h.Evaluate(ones(10, 10)); v != 0 {
		t.Errorf("expected 0 at furthest weight, got %d", v)
	}
}

func TestNewHammingTarget_Rejects(t *testing.T) {
	cases := []struct {
		name                string
		length, target, max int
		field               string
	}{
		{"zero length", 0, 0, 0, "chromosome_length"},
		{"negative target", 10, -1, 10, "target_ones"},
		{"target above length", 10, 11, 11, "target_ones"},
		{"unreachable max", 80, 40, 39, "max_fitness"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewHammingTarget(tc.length, tc.target, tc.max)
			if !errors.Is(err, genetic.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var ce *genetic.ConfigError
			if !errors.As(err, &ce) || ce.Field != tc.field {
				t.Errorf("expected field %s, got %v", tc.field, err)
			}
		})
	}
}

func TestNormalizeLinear(t *testing.T) {
	norm := NormalizeLinear(40, 80)

	if v := norm(40); v != 0.0 {
		t.Errorf("expected 0.0 at min, got %v", v)
	}
	if v := norm(80); v != 1.0 {
		t.Errorf("expected 1.0 at max, got %v", v)
	}
	if v := norm(60); v != 0.5 {
		t.Errorf("expected 0.5 at midpoint, got %v", v)
	}
	if v := norm(10); v != 0.0 {
		t.Errorf("expected 0.0 below min, got %v", v)
	}

	flat := NormalizeLinear(5, 5)
	if flat(5) != 1 || flat(4) != 0 {
		t.Error("degenerate range should step at max")
	}
}
