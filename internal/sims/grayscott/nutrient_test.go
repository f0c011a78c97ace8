package grayscott

import "testing"

func TestPatternFactorsInRange(t *testing.T) {
	const w, h = 64, 48
	for _, p := range Patterns() {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				f := p.Factor(x, y, w, h)
				if f < 0 || f > 1 {
					t.Fatalf("%s factor at (%d,%d) = %v, out of [0,1]", p, x, y, f)
				}
			}
		}
	}
}

func TestUniformFactorIsOne(t *testing.T) {
	for _, xy := range [][2]int{{0, 0}, {5, 9}, {63, 47}} {
		if f := PatternUniform.Factor(xy[0], xy[1], 64, 48); f != 1 {
			t.Fatalf("uniform factor at %v = %v, want 1", xy, f)
		}
	}
}

func TestNoiseDeterministicPerCell(t *testing.T) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			a := PatternNoise.Factor(x, y, 16, 16)
			b := PatternNoise.Factor(x, y, 16, 16)
			if a != b {
				t.Fatalf("noise at (%d,%d) not deterministic: %v != %v", x, y, a, b)
			}
		}
	}
	// Different cells should not all collapse to one value.
	if PatternNoise.Factor(0, 0, 16, 16) == PatternNoise.Factor(1, 0, 16, 16) &&
		PatternNoise.Factor(0, 0, 16, 16) == PatternNoise.Factor(0, 1, 16, 16) {
		t.Fatal("noise draws look constant across cells")
	}
}

func TestReversalInvertsFactor(t *testing.T) {
	s := New(32, 32, 0.03, 0.06, 1, 0.5)
	s.SetNutrientPattern(PatternDiagonalGradient, false)
	plain := s.NutrientFactor(10, 20)
	s.ToggleNutrientReversal()
	if got := s.NutrientFactor(10, 20); got != 1-plain {
		t.Fatalf("reversed factor = %v, want %v", got, 1-plain)
	}
	s.ToggleNutrientReversal()
	if got := s.NutrientFactor(10, 20); got != plain {
		t.Fatalf("double toggle should restore factor, got %v want %v", got, plain)
	}
}

func TestCycleNutrientPatternWraps(t *testing.T) {
	s := New(8, 8, 0.03, 0.06, 1, 0.5)
	seen := map[NutrientPattern]bool{}
	for i := 0; i < int(patternCount); i++ {
		p, _ := s.NutrientPattern()
		seen[p] = true
		s.CycleNutrientPattern()
	}
	if len(seen) != int(patternCount) {
		t.Fatalf("cycling visited %d patterns, want %d", len(seen), patternCount)
	}
	if p, _ := s.NutrientPattern(); p != PatternUniform {
		t.Fatalf("full cycle should return to Uniform, got %s", p)
	}
}

func TestPaintHonorsNutrientPattern(t *testing.T) {
	s := New(32, 32, 0, 0, 1, 0.5)
	s.SetNutrientPattern(PatternUniform, false)
	s.Paint(16, 16, 2)
	if got := s.Get(16, 16); got.U != 0.5 || got.V != 0.99 {
		t.Fatalf("painted cell = %+v, want (0.5, 0.99)", got)
	}

	// With the uniform pattern reversed the factor is zero everywhere, so
	// painting deposits no V.
	s.Clear()
	s.SetNutrientPattern(PatternUniform, true)
	s.Paint(16, 16, 2)
	if got := s.Get(16, 16); got.V != 0 {
		t.Fatalf("reversed-uniform paint deposited V=%v, want 0", got.V)
	}
}

func TestEraseRestoresRestState(t *testing.T) {
	s := New(16, 16, 0, 0, 1, 0.5)
	s.Paint(8, 8, 3)
	s.Erase(8, 8, 3)
	if got := s.Get(8, 8); got.U != 1 || got.V != 0 {
		t.Fatalf("erased cell = %+v, want (1, 0)", got)
	}
}
