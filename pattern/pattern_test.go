package pattern

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/designforge/forge"
)

func TestSVGAllKinds(t *testing.T) {
	for _, k := range []Kind{Stripes, Dots, Grid, Checker} {
		t.Run(k.String(), func(t *testing.T) {
			o := DefaultOptions()
			o.Kind = k
			svg, err := SVG(o)
			if err != nil {
				t.Fatalf("SVG: %v", err)
			}
			for _, frag := range []string{"<svg", "<pattern", `fill="url(#p)"`, "</svg>"} {
				if !strings.Contains(svg, frag) {
					t.Errorf("output missing %q", frag)
				}
			}
		})
	}
}

func TestSVGColors(t *testing.T) {
	o := DefaultOptions()
	o.Kind = Dots
	o.Foreground = forge.Hex("#FF8800")
	o.Background = forge.Hex("#112233")
	svg, err := SVG(o)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.Contains(svg, "#FF8800") {
		t.Error("foreground color missing")
	}
	if !strings.Contains(svg, "#112233") {
		t.Error("background rect missing")
	}
}

func TestSVGTransparentBackgroundOmitted(t *testing.T) {
	o := DefaultOptions()
	o.Background = forge.Transparent
	svg, err := SVG(o)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	// The only rects are the pattern content and the canvas fill.
	if strings.Contains(svg, `<rect width="16" height="16" fill="#`) {
		t.Error("transparent background still emitted a rect")
	}
}

func TestSVGValidation(t *testing.T) {
	o := DefaultOptions()
	o.Kind = Kind(42)
	if _, err := SVG(o); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("err = %v, want ErrInvalidKind", err)
	}
	o = DefaultOptions()
	o.Tile = 0
	if _, err := SVG(o); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestDataURI(t *testing.T) {
	uri, err := DataURI(DefaultOptions())
	if err != nil {
		t.Fatalf("DataURI: %v", err)
	}
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected prefix: %.40q", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(uri[len(prefix):])
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if !strings.Contains(string(raw), "<svg") {
		t.Error("decoded payload is not SVG")
	}
}

func TestSVGDeterministic(t *testing.T) {
	a, err := SVG(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := SVG(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("identical options produced different SVG")
	}
}
