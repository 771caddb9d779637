package typescale

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	steps, err := Generate(Options{Base: 16, Ratio: 1.25, StepsUp: 3, StepsDown: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) != 6 {
		t.Fatalf("got %d steps, want 6", len(steps))
	}
	// Ordered smallest to largest with the base at index 0.
	for i := 1; i < len(steps); i++ {
		if steps[i].Px <= steps[i-1].Px {
			t.Fatalf("steps not ascending at %d: %v <= %v", i, steps[i].Px, steps[i-1].Px)
		}
	}
	var base *Step
	for i := range steps {
		if steps[i].Index == 0 {
			base = &steps[i]
		}
	}
	if base == nil || base.Px != 16 {
		t.Fatalf("base step missing or wrong: %+v", base)
	}
	if base.Rem != 1 {
		t.Errorf("base rem = %v, want 1", base.Rem)
	}

	// One ratio step up from 16 at 1.25 is 20.
	for _, s := range steps {
		if s.Index == 1 && math.Abs(s.Px-20) > 1e-9 {
			t.Errorf("step +1 = %v, want 20", s.Px)
		}
	}
}

func TestGenerateDefaults(t *testing.T) {
	steps, err := Generate(Options{Base: 16})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(steps))
	}
	if steps[0].LineHeight != 24 {
		t.Errorf("default line height = %v, want 24", steps[0].LineHeight)
	}
}

func TestGenerateInvalidBase(t *testing.T) {
	for _, base := range []float64{0, -4, math.NaN()} {
		if _, err := Generate(Options{Base: base}); !errors.Is(err, ErrInvalidBase) {
			t.Errorf("base %v: err = %v, want ErrInvalidBase", base, err)
		}
	}
}

func TestNamedRatios(t *testing.T) {
	r, err := Ratio("golden")
	if err != nil {
		t.Fatalf("Ratio: %v", err)
	}
	if r != 1.618 {
		t.Errorf("golden = %v", r)
	}
	if _, err := Ratio("brass"); !errors.Is(err, ErrInvalidRatio) {
		t.Errorf("err = %v, want ErrInvalidRatio", err)
	}
	if len(RatioNames()) != 8 {
		t.Errorf("RatioNames count = %d", len(RatioNames()))
	}
}

func TestCSS(t *testing.T) {
	steps, err := Generate(Options{Base: 16, Ratio: 1.5, StepsUp: 1, StepsDown: 1})
	if err != nil {
		t.Fatal(err)
	}
	css := CSS(steps)
	for _, frag := range []string{":root {", "--scale-n1:", "--scale-0: 1rem;", "--scale-1: 1.5rem;"} {
		if !strings.Contains(css, frag) {
			t.Errorf("CSS missing %q in %q", frag, css)
		}
	}
}

func TestNewMeasurerRejectsJunk(t *testing.T) {
	if _, err := NewMeasurer([]byte("definitely not a font")); !errors.Is(err, ErrBadFont) {
		t.Errorf("err = %v, want ErrBadFont", err)
	}
}
