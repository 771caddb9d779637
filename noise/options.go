package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/designforge/forge"
)

// Error kinds reported by Generate. All are errors.Is-compatible
// sentinels; Generate wraps them with the offending value.
var (
	// ErrInvalidDimensions reports a width or height that cannot be
	// clamped into the supported range (zero or negative).
	ErrInvalidDimensions = errors.New("noise: invalid dimensions")

	// ErrInvalidVariant reports an unrecognized variant tag.
	ErrInvalidVariant = errors.New("noise: invalid variant")

	// ErrInvalidNumericParameter reports a parameter that is not a
	// number at all (NaN or infinite). Merely out-of-range values are
	// clamped instead.
	ErrInvalidNumericParameter = errors.New("noise: numeric parameter is not a number")
)

// Dimension bounds for a generation pass.
const (
	MinDimension = 32
	MaxDimension = 4096
)

// Options describes one generation pass. The record is treated as
// immutable per call: Generate normalizes a copy and never mutates the
// caller's value.
type Options struct {
	// Width and Height of the output buffer in pixels. Values are
	// clamped to [MinDimension, MaxDimension]; zero or negative
	// values fail with ErrInvalidDimensions.
	Width  int
	Height int

	// Variant selects the sampling algorithm. Invalid values fail
	// with ErrInvalidVariant.
	Variant Variant

	// Intensity controls the raw noise amplitude, clamped to [0, 1].
	Intensity float64

	// Alpha is the final opacity multiplier, clamped to [0, 1].
	Alpha float64

	// Contrast remaps midtone spread, clamped to [0, 1].
	Contrast float64

	// Scale is the grain block size in pixels; each scale×scale block
	// shares one sampled value. Values below 1 are raised to 1.
	Scale int

	// Seed fully determines the pseudo-random stream. Any 64-bit
	// value is accepted (only the low 32 bits feed the stream; a zero
	// seed is remapped to a canonical constant by the stream itself).
	Seed int64

	// Tint is blended into the final pixel color.
	Tint forge.RGBA

	// TintStrength is the blend weight toward Tint, clamped to [0, 1].
	TintStrength float64
}

// DefaultOptions returns a ready-to-use film-grain configuration with
// a non-deterministic seed. Callers wanting reproducible output set
// Seed explicitly.
func DefaultOptions() Options {
	return Options{
		Width:        512,
		Height:       512,
		Variant:      Film,
		Intensity:    0.5,
		Alpha:        0.5,
		Contrast:     0.5,
		Scale:        1,
		Seed:         rand.Int64(),
		Tint:         forge.White,
		TintStrength: 0,
	}
}

// normalize validates o and clamps its numeric fields in place,
// returning the first fatal problem found. The permissive policy for
// continuous parameters (clamp, don't fail) matches slider-driven
// callers; structural problems fail fast.
func (o *Options) normalize() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	o.Width = clampInt(o.Width, MinDimension, MaxDimension)
	o.Height = clampInt(o.Height, MinDimension, MaxDimension)

	if !o.Variant.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidVariant, o.Variant)
	}

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"intensity", o.Intensity},
		{"alpha", o.Alpha},
		{"contrast", o.Contrast},
		{"tintStrength", o.TintStrength},
	} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidNumericParameter, p.name, p.v)
		}
	}

	o.Intensity = forge.Clamp01(o.Intensity)
	o.Alpha = forge.Clamp01(o.Alpha)
	o.Contrast = forge.Clamp01(o.Contrast)
	o.TintStrength = forge.Clamp01(o.TintStrength)
	if o.Scale < 1 {
		o.Scale = 1
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
