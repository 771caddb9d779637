package typescale

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ErrBadFont reports font data that could not be parsed.
var ErrBadFont = errors.New("typescale: font data could not be parsed")

// Specimen holds the measured geometry of one sample string at one
// size, in pixels.
type Specimen struct {
	// Width is the total horizontal advance of the shaped sample.
	Width float64
	// Ascent and Descent are the font's line extents above and below
	// the baseline (both positive).
	Ascent  float64
	Descent float64
	// LineHeight is ascent + descent + the font's line gap.
	LineHeight float64
}

// Measurer shapes specimen strings against a parsed font. Parsing is
// done once; the measurer can then measure any number of step sizes.
//
// A Measurer is not safe for concurrent use: the underlying shaper
// keeps a mutable buffer.
type Measurer struct {
	face   *font.Face
	shaper shaping.HarfbuzzShaper
}

// NewMeasurer parses TTF or OTF font data.
func NewMeasurer(fontData []byte) (*Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFont, err)
	}
	return &Measurer{face: face}, nil
}

// Measure shapes sample at the given pixel size and returns its
// geometry. The shaping is deterministic for a given font, sample and
// size.
func (m *Measurer) Measure(sample string, size float64) Specimen {
	runes := []rune(sample)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      floatToFixed(size),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	output := m.shaper.Shape(input)

	var width float64
	for _, g := range output.Glyphs {
		width += fixedToFloat(g.XAdvance)
	}

	ascent := fixedToFloat(output.LineBounds.Ascent)
	descent := -fixedToFloat(output.LineBounds.Descent) // stored negative below baseline
	gap := fixedToFloat(output.LineBounds.Gap)
	return Specimen{
		Width:      width,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: ascent + descent + gap,
	}
}

// MeasureSteps measures one sample string across a generated scale,
// returning one specimen per step in the same order.
func (m *Measurer) MeasureSteps(sample string, steps []Step) []Specimen {
	specs := make([]Specimen, len(steps))
	for i, s := range steps {
		specs[i] = m.Measure(sample, s.Px)
	}
	return specs
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
