package gradient

import (
	"errors"
	"math"
	"testing"

	"github.com/designforge/forge"
)

func twoStop() *Gradient {
	return &Gradient{
		Type:  Linear,
		Angle: 90,
		Stops: []Stop{
			{Offset: 0, Color: forge.Black},
			{Offset: 1, Color: forge.White},
		},
	}
}

func TestColorAtEndpoints(t *testing.T) {
	g := twoStop()
	if got := g.ColorAt(0); got != forge.Black {
		t.Errorf("ColorAt(0) = %+v", got)
	}
	if got := g.ColorAt(1); got != forge.White {
		t.Errorf("ColorAt(1) = %+v", got)
	}
	mid := g.ColorAt(0.5)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.G-0.5) > 1e-9 {
		t.Errorf("ColorAt(0.5) = %+v", mid)
	}
}

func TestColorAtUnsortedStops(t *testing.T) {
	g := &Gradient{Stops: []Stop{
		{Offset: 1, Color: forge.White},
		{Offset: 0, Color: forge.Black},
	}}
	if got := g.ColorAt(0); got != forge.Black {
		t.Errorf("unsorted stops: ColorAt(0) = %+v", got)
	}
}

func TestColorAtEdgeCases(t *testing.T) {
	empty := &Gradient{}
	if got := empty.ColorAt(0.5); got != forge.Transparent {
		t.Errorf("empty gradient = %+v", got)
	}
	single := &Gradient{Stops: []Stop{{Offset: 0.5, Color: forge.Red}}}
	if got := single.ColorAt(0.9); got != forge.Red {
		t.Errorf("single stop = %+v", got)
	}
	// Coincident stops must not divide by zero.
	coincident := &Gradient{Stops: []Stop{
		{Offset: 0.5, Color: forge.Red},
		{Offset: 0.5, Color: forge.Blue},
	}}
	_ = coincident.ColorAt(0.5)
}

func TestExtendModes(t *testing.T) {
	cases := []struct {
		mode ExtendMode
		t    float64
		want float64
	}{
		{ExtendPad, 1.5, 1},
		{ExtendPad, -0.5, 0},
		{ExtendRepeat, 1.25, 0.25},
		{ExtendRepeat, -0.25, 0.75},
		{ExtendReflect, 1.25, 0.75},
		{ExtendReflect, 2.25, 0.25},
	}
	for _, tc := range cases {
		if got := applyExtendMode(tc.t, tc.mode); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("applyExtendMode(%v, %v) = %v, want %v", tc.t, tc.mode, got, tc.want)
		}
	}
}

func TestCSS(t *testing.T) {
	g := &Gradient{
		Type:  Linear,
		Angle: 135,
		Stops: []Stop{
			{Offset: 0, Color: forge.Hex("#FF0000")},
			{Offset: 1, Color: forge.Hex("#0000FF")},
		},
	}
	got, err := g.CSS()
	if err != nil {
		t.Fatalf("CSS: %v", err)
	}
	want := "linear-gradient(135deg, #FF0000 0%, #0000FF 100%)"
	if got != want {
		t.Errorf("CSS = %q, want %q", got, want)
	}

	g.Type = Radial
	got, err = g.CSS()
	if err != nil {
		t.Fatal(err)
	}
	if got != "radial-gradient(circle, #FF0000 0%, #0000FF 100%)" {
		t.Errorf("radial CSS = %q", got)
	}

	g.Type = Conic
	g.Angle = 45
	got, err = g.CSS()
	if err != nil {
		t.Fatal(err)
	}
	if got != "conic-gradient(from 45deg, #FF0000 0%, #0000FF 100%)" {
		t.Errorf("conic CSS = %q", got)
	}
}

func TestCSSNoStops(t *testing.T) {
	g := &Gradient{}
	if _, err := g.CSS(); !errors.Is(err, ErrNoStops) {
		t.Errorf("err = %v, want ErrNoStops", err)
	}
	if _, err := g.Render(10, 10); !errors.Is(err, ErrNoStops) {
		t.Errorf("Render err = %v, want ErrNoStops", err)
	}
}

func TestRenderLinearHorizontal(t *testing.T) {
	g := twoStop() // 90deg: left-to-right, black to white
	pm, err := g.Render(64, 8)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	left := pm.GetPixel(0, 4)
	right := pm.GetPixel(63, 4)
	if left.R >= right.R {
		t.Errorf("left %v not darker than right %v", left.R, right.R)
	}
	// Columns are uniform for a horizontal axis.
	for y := 1; y < 8; y++ {
		if pm.GetPixel(10, y) != pm.GetPixel(10, 0) {
			t.Fatalf("column 10 not uniform at y=%d", y)
		}
	}
}

func TestRenderRadialCenterIsFirstStop(t *testing.T) {
	g := &Gradient{
		Type: Radial,
		Stops: []Stop{
			{Offset: 0, Color: forge.White},
			{Offset: 1, Color: forge.Black},
		},
	}
	pm, err := g.Render(33, 33)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	center := pm.GetPixel(16, 16)
	corner := pm.GetPixel(0, 0)
	if center.R <= corner.R {
		t.Errorf("center %v not brighter than corner %v", center.R, corner.R)
	}
}
