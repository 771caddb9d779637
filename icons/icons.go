// Package icons renders parametric app-icon glyphs and packages them
// as multi-size PNG bundles.
//
// A bundle starts from one base rendering at the largest requested
// size; every other size is a high-quality downscale of that base, so
// all entries in a bundle look identical apart from resolution.
package icons

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/designforge/forge"
	"github.com/designforge/forge/internal/parallel"
)

// Error kinds reported by Render and Bundle.
var (
	ErrInvalidShape = errors.New("icons: unknown shape")
	ErrNoSizes      = errors.New("icons: no output sizes requested")
	ErrInvalidSize  = errors.New("icons: sizes must be positive")
)

// Shape selects the glyph geometry.
type Shape int

const (
	// Circle is a filled disc.
	Circle Shape = iota
	// Squircle is a rounded square with a continuous corner curve.
	Squircle
	// Square is a rounded-rectangle with conventional corners.
	Square
)

var shapeNames = map[Shape]string{
	Circle:   "circle",
	Squircle: "squircle",
	Square:   "square",
}

// String returns the shape's tag.
func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Options configures a bundle. Padding is the margin around the glyph
// as a fraction of the icon size, clamped to [0, 0.4].
type Options struct {
	Shape      Shape
	Fill       forge.RGBA
	Background forge.RGBA
	Padding    float64
	Sizes      []int
}

// DefaultOptions returns a blue circle over transparency at the usual
// favicon/app-icon sizes.
func DefaultOptions() Options {
	return Options{
		Shape:      Circle,
		Fill:       forge.Hex("#3B82F6"),
		Background: forge.Transparent,
		Padding:    0.1,
		Sizes:      []int{16, 32, 64, 128, 256},
	}
}

// Render draws the glyph at one size into a pixmap. Coverage at the
// glyph edge is antialiased by signed distance, one sample per pixel.
func Render(o Options, size int) (*forge.Pixmap, error) {
	if _, ok := shapeNames[o.Shape]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShape, int(o.Shape))
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	pad := o.Padding
	if pad < 0 {
		pad = 0
	}
	if pad > 0.4 {
		pad = 0.4
	}

	pm := forge.NewPixmap(size, size)
	pm.Clear(o.Background)

	s := float64(size)
	half := s / 2
	extent := half * (1 - 2*pad) // glyph half-width in pixels

	parallel.Rows(size, func(y int) {
		for x := 0; x < size; x++ {
			// Pixel center relative to the icon center.
			dx := float64(x) + 0.5 - half
			dy := float64(y) + 0.5 - half

			d := signedDistance(o.Shape, dx, dy, extent)
			cov := forge.Clamp01(0.5 - d) // 1 inside, 0 outside, ramp at the edge
			if cov == 0 {
				continue
			}
			c := o.Fill
			c.A *= cov
			blendOver(pm, x, y, c)
		}
	})
	return pm, nil
}

// signedDistance returns the distance from the glyph boundary in
// pixels, negative inside.
func signedDistance(shape Shape, dx, dy, extent float64) float64 {
	switch shape {
	case Circle:
		return math.Hypot(dx, dy) - extent
	case Squircle:
		// Superellipse |x|^n + |y|^n = r^n with n=4 gives the
		// continuous-curvature corner look.
		const n = 4.0
		v := math.Pow(math.Abs(dx), n) + math.Pow(math.Abs(dy), n)
		return math.Pow(v, 1/n) - extent
	default: // Square
		r := extent * 0.2 // corner radius
		qx := math.Abs(dx) - (extent - r)
		qy := math.Abs(dy) - (extent - r)
		if qx < 0 {
			qx = 0
		}
		if qy < 0 {
			qy = 0
		}
		return math.Hypot(qx, qy) - r
	}
}

// blendOver source-over composites c onto the pixel at (x, y).
func blendOver(pm *forge.Pixmap, x, y int, c forge.RGBA) {
	dst := pm.GetPixel(x, y)
	outA := c.A + dst.A*(1-c.A)
	if outA == 0 {
		pm.SetPixel(x, y, forge.Transparent)
		return
	}
	blend := func(s, d float64) float64 {
		return (s*c.A + d*dst.A*(1-c.A)) / outA
	}
	pm.SetPixel(x, y, forge.RGBA{
		R: blend(c.R, dst.R),
		G: blend(c.G, dst.G),
		B: blend(c.B, dst.B),
		A: outA,
	})
}

// Asset is one encoded bundle entry.
type Asset struct {
	Name string
	Size int
	PNG  []byte
}

// Bundle renders the base glyph once at the largest requested size,
// downscales it to every other size with Catmull-Rom resampling, and
// encodes the PNGs concurrently. Assets come back ordered by size,
// ascending. The context cancels in-flight encodes.
func Bundle(ctx context.Context, o Options) ([]Asset, error) {
	if len(o.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	sizes := make([]int, len(o.Sizes))
	copy(sizes, o.Sizes)
	sort.Ints(sizes)
	if sizes[0] <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, sizes[0])
	}

	base, err := Render(o, sizes[len(sizes)-1])
	if err != nil {
		return nil, err
	}
	baseImg := base.ToImage()

	assets := make([]Asset, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	for i, size := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var pm *forge.Pixmap
			if size == base.Width() {
				pm = base
			} else {
				dst := image.NewNRGBA(image.Rect(0, 0, size, size))
				draw.CatmullRom.Scale(dst, dst.Bounds(), baseImg, baseImg.Bounds(), draw.Src, nil)
				pm = forge.FromImage(dst)
			}
			raw, err := pm.EncodePNG()
			if err != nil {
				return err
			}
			assets[i] = Asset{
				Name: fmt.Sprintf("icon-%dx%d.png", size, size),
				Size: size,
				PNG:  raw,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	forge.Logger().Debug("icons: bundle encoded",
		"shape", o.Shape.String(), "sizes", len(assets))
	return assets, nil
}
