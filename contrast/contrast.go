// Package contrast implements WCAG 2.x contrast-ratio arithmetic and
// report generation for color pairs.
package contrast

import (
	"github.com/designforge/forge"
)

// WCAG 2.x contrast thresholds.
const (
	// AANormal is the minimum ratio for normal text at level AA.
	AANormal = 4.5
	// AALarge is the minimum ratio for large text at level AA.
	AALarge = 3.0
	// AAANormal is the minimum ratio for normal text at level AAA.
	AAANormal = 7.0
	// AAALarge is the minimum ratio for large text at level AAA.
	AAALarge = 4.5
)

// Ratio returns the WCAG contrast ratio between two colors, in
// [1, 21]. Order of arguments does not matter.
func Ratio(a, b forge.RGBA) float64 {
	la := a.Luminance()
	lb := b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Result captures the pass/fail outcome for one color pair.
type Result struct {
	Ratio     float64
	AANormal  bool
	AALarge   bool
	AAANormal bool
	AAALarge  bool
}

// Evaluate computes the contrast ratio of a pair and checks it against
// all four WCAG thresholds.
func Evaluate(foreground, background forge.RGBA) Result {
	r := Ratio(foreground, background)
	return Result{
		Ratio:     r,
		AANormal:  r >= AANormal,
		AALarge:   r >= AALarge,
		AAANormal: r >= AAANormal,
		AAALarge:  r >= AAALarge,
	}
}

// Pair names a foreground/background combination for reporting.
type Pair struct {
	Name       string
	Foreground forge.RGBA
	Background forge.RGBA
}
