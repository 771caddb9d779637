// Package pattern builds tileable SVG background patterns.
//
// Each builder emits a complete standalone SVG document with a single
// <pattern> definition covering the canvas, plus a base64 data URI
// form for direct use in CSS background-image declarations.
package pattern

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/designforge/forge"
)

// Error kinds reported by SVG.
var (
	ErrInvalidKind = errors.New("pattern: unknown pattern kind")
	ErrInvalidSize = errors.New("pattern: tile size must be positive")
)

// Kind selects the pattern geometry.
type Kind int

const (
	// Stripes draws diagonal stripes.
	Stripes Kind = iota
	// Dots draws a dot lattice.
	Dots
	// Grid draws horizontal and vertical rules.
	Grid
	// Checker draws a two-tone checkerboard.
	Checker
)

var kindNames = map[Kind]string{
	Stripes: "stripes",
	Dots:    "dots",
	Grid:    "grid",
	Checker: "checker",
}

// String returns the kind's tag ("stripes", "dots", ...).
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Options configures one pattern. Thickness is the stripe/rule width
// (or dot radius) as a fraction of the tile size, clamped to (0, 1].
type Options struct {
	Kind       Kind
	Tile       int // tile edge in pixels
	Width      int // canvas width in pixels
	Height     int // canvas height in pixels
	Foreground forge.RGBA
	Background forge.RGBA
	Thickness  float64
}

// DefaultOptions returns a 16px diagonal stripe pattern on a
// transparent background.
func DefaultOptions() Options {
	return Options{
		Kind:       Stripes,
		Tile:       16,
		Width:      256,
		Height:     256,
		Foreground: forge.Black,
		Background: forge.Transparent,
		Thickness:  0.25,
	}
}

// SVG renders the pattern as a standalone SVG document.
func SVG(o Options) (string, error) {
	if _, ok := kindNames[o.Kind]; !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidKind, int(o.Kind))
	}
	if o.Tile <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSize, o.Tile)
	}
	if o.Width <= 0 {
		o.Width = o.Tile * 16
	}
	if o.Height <= 0 {
		o.Height = o.Tile * 16
	}
	th := o.Thickness
	if th <= 0 || th > 1 {
		th = 0.25
	}

	t := float64(o.Tile)
	var tile strings.Builder
	switch o.Kind {
	case Stripes:
		w := t * th
		// Three parallel lines so the diagonal tiles seamlessly.
		for _, off := range []float64{-t, 0, t} {
			fmt.Fprintf(&tile,
				`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`,
				off, t-off, t+off, -off, o.Foreground.HexString(), w)
		}
	case Dots:
		r := t * th / 2
		fmt.Fprintf(&tile, `<circle cx="%g" cy="%g" r="%g" fill="%s"/>`,
			t/2, t/2, r, o.Foreground.HexString())
	case Grid:
		w := t * th
		fmt.Fprintf(&tile, `<path d="M %g 0 V %g M 0 %g H %g" stroke="%s" stroke-width="%g"/>`,
			t-w/2, t, t-w/2, t, o.Foreground.HexString(), w)
	case Checker:
		half := t / 2
		fmt.Fprintf(&tile, `<rect width="%g" height="%g" fill="%s"/>`, half, half, o.Foreground.HexString())
		fmt.Fprintf(&tile, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`,
			half, half, half, half, o.Foreground.HexString())
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, o.Width, o.Height)
	fmt.Fprintf(&doc, `<defs><pattern id="p" width="%d" height="%d" patternUnits="userSpaceOnUse">`, o.Tile, o.Tile)
	if o.Background.A > 0 {
		fmt.Fprintf(&doc, `<rect width="%d" height="%d" fill="%s"/>`, o.Tile, o.Tile, o.Background.HexString())
	}
	doc.WriteString(tile.String())
	doc.WriteString(`</pattern></defs>`)
	fmt.Fprintf(&doc, `<rect width="%d" height="%d" fill="url(#p)"/>`, o.Width, o.Height)
	doc.WriteString(`</svg>`)
	return doc.String(), nil
}

// DataURI renders the pattern and wraps it as a base64 SVG data URI.
func DataURI(o Options) (string, error) {
	svg, err := SVG(o)
	if err != nil {
		return "", err
	}
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg)), nil
}
