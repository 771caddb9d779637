package icons

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/designforge/forge"
)

func TestRenderCircleCoverage(t *testing.T) {
	o := DefaultOptions()
	o.Fill = forge.RGBA{R: 1, A: 1}
	pm, err := Render(o, 64)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	center := pm.GetPixel(32, 32)
	if center.A < 0.99 || center.R < 0.99 {
		t.Errorf("center pixel = %+v, want opaque fill", center)
	}
	corner := pm.GetPixel(0, 0)
	if corner.A != 0 {
		t.Errorf("corner pixel = %+v, want transparent", corner)
	}
}

func TestRenderBackgroundPreserved(t *testing.T) {
	o := DefaultOptions()
	o.Background = forge.RGBA{R: 1, G: 1, B: 1, A: 1}
	pm, err := Render(o, 32)
	if err != nil {
		t.Fatal(err)
	}
	corner := pm.GetPixel(0, 0)
	if corner.A != 1 || corner.R != 1 {
		t.Errorf("corner = %+v, want white background", corner)
	}
}

func TestRenderShapes(t *testing.T) {
	for _, shape := range []Shape{Circle, Squircle, Square} {
		t.Run(shape.String(), func(t *testing.T) {
			o := DefaultOptions()
			o.Shape = shape
			pm, err := Render(o, 48)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if pm.GetPixel(24, 24).A < 0.99 {
				t.Error("glyph center not filled")
			}
		})
	}
}

func TestSquareCoversMoreThanCircle(t *testing.T) {
	// At equal extent the rounded square reaches further toward the
	// corners than the disc does.
	circle, square := DefaultOptions(), DefaultOptions()
	square.Shape = Square
	a, err := Render(circle, 64)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(square, 64)
	if err != nil {
		t.Fatal(err)
	}
	if coverage(b) <= coverage(a) {
		t.Errorf("square coverage %v <= circle coverage %v", coverage(b), coverage(a))
	}
}

func coverage(pm *forge.Pixmap) float64 {
	var sum float64
	data := pm.Data()
	for i := 3; i < len(data); i += 4 {
		sum += float64(data[i])
	}
	return sum
}

func TestRenderValidation(t *testing.T) {
	o := DefaultOptions()
	o.Shape = Shape(99)
	if _, err := Render(o, 32); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("err = %v, want ErrInvalidShape", err)
	}
	if _, err := Render(DefaultOptions(), 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestBundle(t *testing.T) {
	o := DefaultOptions()
	o.Sizes = []int{64, 16, 32}
	assets, err := Bundle(context.Background(), o)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("got %d assets", len(assets))
	}

	wantSizes := []int{16, 32, 64}
	for i, a := range assets {
		if a.Size != wantSizes[i] {
			t.Errorf("asset %d size = %d, want %d", i, a.Size, wantSizes[i])
		}
		img, err := png.Decode(bytes.NewReader(a.PNG))
		if err != nil {
			t.Fatalf("asset %q: %v", a.Name, err)
		}
		if img.Bounds().Dx() != a.Size {
			t.Errorf("asset %q decodes to %d px, want %d", a.Name, img.Bounds().Dx(), a.Size)
		}
	}
	if assets[0].Name != "icon-16x16.png" {
		t.Errorf("name = %q", assets[0].Name)
	}
}

func TestBundleValidation(t *testing.T) {
	o := DefaultOptions()
	o.Sizes = nil
	if _, err := Bundle(context.Background(), o); !errors.Is(err, ErrNoSizes) {
		t.Errorf("err = %v, want ErrNoSizes", err)
	}

	o.Sizes = []int{32, -1}
	if _, err := Bundle(context.Background(), o); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestBundleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Bundle(ctx, DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBundleDeterministic(t *testing.T) {
	o := DefaultOptions()
	o.Sizes = []int{16, 32}
	a, err := Bundle(context.Background(), o)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Bundle(context.Background(), o)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !bytes.Equal(a[i].PNG, b[i].PNG) {
			t.Errorf("asset %q not byte-identical across runs", a[i].Name)
		}
	}
}
