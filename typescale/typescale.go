// Package typescale generates modular typographic scales and,
// optionally, measures real font specimens for each step.
package typescale

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds reported by Generate.
var (
	ErrInvalidBase  = errors.New("typescale: base size must be positive")
	ErrInvalidRatio = errors.New("typescale: unknown ratio")
)

// Named ratios in the tradition of musical interval scales.
var namedRatios = map[string]float64{
	"minor-second":     1.067,
	"major-second":     1.125,
	"minor-third":      1.2,
	"major-third":      1.25,
	"perfect-fourth":   1.333,
	"augmented-fourth": 1.414,
	"perfect-fifth":    1.5,
	"golden":           1.618,
}

// Ratio resolves a named ratio. Unknown names fail with
// ErrInvalidRatio.
func Ratio(name string) (float64, error) {
	if r, ok := namedRatios[name]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRatio, name)
}

// RatioNames returns the supported named ratios, for UI listings.
func RatioNames() []string {
	names := make([]string, 0, len(namedRatios))
	for n := range namedRatios {
		names = append(names, n)
	}
	return names
}

// Options configures a scale. Base is the step-0 size in pixels;
// StepsUp/StepsDown count the steps generated above and below it.
// LineHeightRatio multiplies each size into a suggested line height
// (1.5 when zero).
type Options struct {
	Base            float64
	Ratio           float64
	StepsUp         int
	StepsDown       int
	LineHeightRatio float64
}

// Step is one entry of a generated scale.
type Step struct {
	// Index is the step's position relative to the base (0 = base,
	// negative = smaller).
	Index int
	// Px is the size in pixels, rounded to two decimals.
	Px float64
	// Rem is the size relative to a 16px root.
	Rem float64
	// LineHeight is the suggested line height in pixels.
	LineHeight float64
}

// Generate produces the scale from Options. Steps are ordered from the
// smallest (most negative index) to the largest.
func Generate(o Options) ([]Step, error) {
	if o.Base <= 0 || math.IsNaN(o.Base) || math.IsInf(o.Base, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase, o.Base)
	}
	ratio := o.Ratio
	if ratio <= 1 {
		ratio = namedRatios["major-third"]
	}
	lh := o.LineHeightRatio
	if lh <= 0 {
		lh = 1.5
	}
	if o.StepsUp < 0 {
		o.StepsUp = 0
	}
	if o.StepsDown < 0 {
		o.StepsDown = 0
	}

	steps := make([]Step, 0, o.StepsUp+o.StepsDown+1)
	for i := -o.StepsDown; i <= o.StepsUp; i++ {
		size := o.Base * math.Pow(ratio, float64(i))
		steps = append(steps, Step{
			Index:      i,
			Px:         round2(size),
			Rem:        round3(size / 16),
			LineHeight: round2(size * lh),
		})
	}
	return steps, nil
}

// CSS renders the scale as custom property declarations, one
// --scale-N variable per step.
func CSS(steps []Step) string {
	out := ":root {\n"
	for _, s := range steps {
		out += fmt.Sprintf("  --scale-%s: %grem;\n", stepKey(s.Index), s.Rem)
	}
	return out + "}\n"
}

// stepKey renders indices the way utility frameworks name them:
// "n2" for -2, "0" for the base, "2" for +2.
func stepKey(i int) string {
	if i < 0 {
		return fmt.Sprintf("n%d", -i)
	}
	return fmt.Sprintf("%d", i)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
