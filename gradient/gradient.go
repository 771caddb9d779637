// Package gradient builds CSS gradient strings and raster previews
// from a shared color-stop model.
//
// The stop model (sorted offsets, pad/repeat/reflect extension) is the
// same for every output form: CSS() emits a linear-gradient(),
// radial-gradient() or conic-gradient() declaration, and Render()
// rasterizes the gradient into a forge.Pixmap for preview thumbnails.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/designforge/forge"
	"github.com/designforge/forge/internal/parallel"
)

// ErrNoStops reports a gradient with an empty stop list.
var ErrNoStops = errors.New("gradient: at least one color stop required")

// Type selects the gradient geometry.
type Type int

const (
	// Linear interpolates along an angled axis.
	Linear Type = iota
	// Radial interpolates by distance from the center.
	Radial
	// Conic interpolates by angle around the center.
	Conic
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// Stop represents a color at a specific position in a gradient.
type Stop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  forge.RGBA
}

// Gradient describes one gradient. Angle is in degrees and applies to
// Linear (axis direction, CSS convention: 0 points up, 90 points
// right) and Conic (start angle).
type Gradient struct {
	Type   Type
	Angle  float64
	Stops  []Stop
	Extend ExtendMode
}

// sortStops sorts color stops by offset without modifying the input.
func sortStops(stops []Stop) []Stop {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode normalizes t to [0, 1] under the extend mode.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = forge.Clamp01(t)
	}
	return t
}

// ColorAt returns the interpolated color at offset t.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func (g *Gradient) ColorAt(t float64) forge.RGBA {
	if len(g.Stops) == 0 {
		return forge.Transparent
	}
	if len(g.Stops) == 1 {
		return g.Stops[0].Color
	}

	sorted := sortStops(g.Stops)
	t = applyExtendMode(t, g.Extend)

	// Binary search for the first stop at or past t.
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1 := sorted[idx-1]
	s2 := sorted[idx]
	// Coincident stops would divide by zero.
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, localT)
}

// CSS returns the gradient as a CSS image value, e.g.
// "linear-gradient(135deg, #FF0000 0%, #0000FF 100%)".
func (g *Gradient) CSS() (string, error) {
	if len(g.Stops) == 0 {
		return "", ErrNoStops
	}

	sorted := sortStops(g.Stops)
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprintf("%s %s", s.Color.HexString(), formatPercent(s.Offset*100))
	}
	stops := strings.Join(parts, ", ")

	switch g.Type {
	case Radial:
		return fmt.Sprintf("radial-gradient(circle, %s)", stops), nil
	case Conic:
		return fmt.Sprintf("conic-gradient(from %s, %s)", formatDeg(g.Angle), stops), nil
	default:
		return fmt.Sprintf("linear-gradient(%s, %s)", formatDeg(g.Angle), stops), nil
	}
}

// Render rasterizes the gradient into a width×height pixmap.
func (g *Gradient) Render(width, height int) (*forge.Pixmap, error) {
	if len(g.Stops) == 0 {
		return nil, ErrNoStops
	}
	pm := forge.NewPixmap(width, height)
	w, h := float64(pm.Width()), float64(pm.Height())
	cx, cy := w/2, h/2

	// CSS angles measure clockwise from "up"; convert to the math
	// convention once.
	rad := (g.Angle - 90) * math.Pi / 180
	dirX, dirY := math.Cos(rad), math.Sin(rad)
	// Project the corners to find the axis span so offset 0 and 1
	// land exactly on the gradient line's extremes.
	minP, maxP := math.Inf(1), math.Inf(-1)
	for _, c := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		p := c[0]*dirX + c[1]*dirY
		minP = math.Min(minP, p)
		maxP = math.Max(maxP, p)
	}
	span := maxP - minP
	if span == 0 {
		span = 1
	}
	maxR := math.Hypot(cx, cy)

	parallel.Rows(pm.Height(), func(y int) {
		for x := 0; x < pm.Width(); x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			var t float64
			switch g.Type {
			case Radial:
				t = math.Hypot(fx-cx, fy-cy) / maxR
			case Conic:
				a := math.Atan2(fy-cy, fx-cx)*180/math.Pi + 90 - g.Angle
				for a < 0 {
					a += 360
				}
				t = math.Mod(a, 360) / 360
			default:
				t = (fx*dirX + fy*dirY - minP) / span
			}
			pm.SetPixel(x, y, g.ColorAt(t))
		}
	})
	return pm, nil
}

// formatPercent trims trailing zeros so "0%", "12.5%", "100%" come out
// the way a hand-written stylesheet would.
func formatPercent(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return s + "%"
}

func formatDeg(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return s + "deg"
}
