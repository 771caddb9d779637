// Package shadow builds layered CSS box-shadow declarations.
package shadow

import (
	"fmt"
	"strings"

	"github.com/designforge/forge"
)

// Layer is one shadow in a stack. Lengths are in pixels.
type Layer struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Spread  float64
	Color   forge.RGBA
	Inset   bool
}

// CSS returns the layer as one box-shadow value, e.g.
// "0px 4px 8px 0px rgba(0, 0, 0, 0.25)".
func (l Layer) CSS() string {
	var b strings.Builder
	if l.Inset {
		b.WriteString("inset ")
	}
	fmt.Fprintf(&b, "%s %s %s %s %s",
		px(l.OffsetX), px(l.OffsetY), px(l.Blur), px(l.Spread), cssColor(l.Color))
	return b.String()
}

// CSS joins a shadow stack into a full box-shadow property value.
// An empty stack renders as "none".
func CSS(layers []Layer) string {
	if len(layers) == 0 {
		return "none"
	}
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = l.CSS()
	}
	return strings.Join(parts, ", ")
}

// Elevation returns a two-layer shadow stack approximating a material
// elevation level in [1, 5]. Values outside the range are clamped.
// The color's alpha is scaled per layer; pass an opaque color for the
// standard look.
func Elevation(level int, color forge.RGBA) []Layer {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	f := float64(level)

	ambient := color
	ambient.A *= 0.08 + 0.01*f
	key := color
	key.A *= 0.12 + 0.02*f

	return []Layer{
		{OffsetY: f, Blur: f * 2, Spread: -f / 2, Color: key},
		{OffsetY: f * 2, Blur: f * 6, Spread: f / 2, Color: ambient},
	}
}

// px formats a pixel length, dropping trailing zeros.
func px(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return s + "px"
}

// cssColor renders a color as rgba(r, g, b, a) when translucent or
// hex when opaque, matching what design tools emit.
func cssColor(c forge.RGBA) string {
	if c.A >= 1 {
		return c.HexString()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		int(forge.Clamp01(c.R)*255+0.5),
		int(forge.Clamp01(c.G)*255+0.5),
		int(forge.Clamp01(c.B)*255+0.5),
		strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", forge.Clamp01(c.A)), "0"), "."))
}
