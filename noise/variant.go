package noise

import (
	"fmt"

	"github.com/designforge/forge/internal/prng"
)

// Variant selects the sampling algorithm for a generation pass.
type Variant int

const (
	// Film draws one uniform sample per cell: classic hard film grain.
	Film Variant = iota
	// Grain averages three samples per cell, giving a softer,
	// lower-variance look.
	Grain
	// Speckle pushes rare cells to a near-extreme bright or dark
	// value and leaves the rest neutral and transparent.
	Speckle
	// Dust scatters sparse bright specks over a fully transparent
	// background.
	Dust
	// Lines samples once per output row, producing horizontal
	// banding.
	Lines
)

var variantNames = map[Variant]string{
	Film:    "film",
	Grain:   "grain",
	Speckle: "speckle",
	Dust:    "dust",
	Lines:   "lines",
}

// String returns the variant's wire tag ("film", "grain", ...).
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// valid reports whether v is one of the defined variants.
func (v Variant) valid() bool {
	_, ok := variantNames[v]
	return ok
}

// ParseVariant maps a string tag to a Variant. Unrecognized tags fail
// with ErrInvalidVariant rather than silently defaulting.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if s == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidVariant, s)
}

// Near-extreme values used by the speckle sampler. Specks are almost
// white or almost black, never fully saturated, so contrast remapping
// still has room to move them.
const (
	speckBright = 0.95
	speckDark   = 0.05
	neutral     = 0.5
)

// dustDensity scales intensity down for the dust variant. Dust is
// intentionally far sparser than speckle: at full intensity roughly
// one cell in six carries a speck.
const dustDensity = 0.15

// sample draws one cell's raw value and opacity weight from the
// stream. It is the single dispatch point for all variants; each arm
// is a pure function of (stream, options) and consumes a fixed,
// documented number of draws so the raster-order contract holds.
//
// The returned value is the raw luminance in [0, 1); weight is the
// opacity weight the compositor multiplies with the alpha option.
func (v Variant) sample(s *prng.Stream, intensity float64) (value, weight float64) {
	switch v {
	case Film, Lines:
		// One draw, unmodified uniform distribution. Lines differs
		// only in sampling granularity, not distribution.
		u := s.Float64()
		return u, u * intensity

	case Grain:
		// Central-limit softening: the mean of three draws clusters
		// around 0.5 with a third of the single-draw variance.
		u := (s.Float64() + s.Float64() + s.Float64()) / 3
		return u, u * intensity

	case Speckle:
		// Threshold derived from 1-intensity: higher intensity lets
		// more draws through. A second draw picks bright or dark.
		u := s.Float64()
		if u > 1-intensity {
			if s.Float64() < neutral {
				return speckDark, 1
			}
			return speckBright, 1
		}
		return neutral, 0

	case Dust:
		// Occurrence probability proportional to intensity; on a hit
		// a second draw sets the speck brightness. Misses are fully
		// transparent so the background shows through.
		if s.Float64() < intensity*dustDensity {
			b := s.Float64()
			return b, 1
		}
		return neutral, 0
	}
	// Options validation rejects unknown variants before sampling.
	panic("noise: sample called with invalid variant " + v.String())
}
