package noise

import (
	"github.com/designforge/forge"
	"github.com/designforge/forge/internal/parallel"
)

// contrastGain is the fixed gain constant of the contrast remap. At
// contrast 1 a raw sample's distance from the midpoint is quadrupled
// before clamping.
const contrastGain = 3.0

// composite maps the raw field into final pixel bytes.
//
// Each cell's raw value passes through the contrast remap, becomes a
// grayscale base, is blended toward the tint, and is paired with an
// alpha from the cell's opacity weight. The resulting RGBA quadruplet
// is then broadcast to every output pixel in the cell's block —
// nearest-neighbor, no smoothing across block boundaries.
func composite(f *field, o *Options) *forge.Pixmap {
	pm := forge.NewPixmap(o.Width, o.Height)

	gain := 1 + o.Contrast*contrastGain
	ts := o.TintStrength

	// Precompute the final bytes per cell; block broadcast then only
	// copies bytes. For scale 1 this is one cell per pixel anyway.
	cellR := make([]uint8, len(f.values))
	cellG := make([]uint8, len(f.values))
	cellB := make([]uint8, len(f.values))
	cellA := make([]uint8, len(f.values))
	for i, v := range f.values {
		vc := forge.Clamp01(0.5 + (v-0.5)*gain)

		r := vc*(1-ts) + o.Tint.R*ts
		g := vc*(1-ts) + o.Tint.G*ts
		b := vc*(1-ts) + o.Tint.B*ts
		a := forge.Clamp01(f.weights[i] * o.Alpha)

		cellR[i] = byteOf(r)
		cellG[i] = byteOf(g)
		cellB[i] = byteOf(b)
		cellA[i] = byteOf(a)
	}

	// Broadcasting is independent per row, so it can run on all cores
	// without perturbing the deterministic cell values.
	if o.Variant == Lines {
		// One sample per output row, spanning the full width.
		parallel.Rows(o.Height, func(y int) {
			for x := 0; x < o.Width; x++ {
				pm.SetPixelBytes(x, y, cellR[y], cellG[y], cellB[y], cellA[y])
			}
		})
		return pm
	}

	parallel.Rows(o.Height, func(y int) {
		cy := y / o.Scale
		row := cy * f.cellsX
		for x := 0; x < o.Width; x++ {
			i := row + x/o.Scale
			pm.SetPixelBytes(x, y, cellR[i], cellG[i], cellB[i], cellA[i])
		}
	})
	return pm
}

// byteOf quantizes a [0, 1] channel to 8 bits with rounding.
func byteOf(v float64) uint8 {
	return uint8(forge.Clamp01(v)*255 + 0.5)
}
