// Package timeline builds CSS keyframe animations from a declarative
// track model, with CSS and JSON export.
package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds reported by the exporters.
var (
	ErrNoKeyframes = errors.New("timeline: track has no keyframes")
	ErrBadOffset   = errors.New("timeline: keyframe offset outside [0, 100]")
)

// Keyframe is one stop on a track. At is the position in percent of
// the track duration; Props maps CSS property names to values.
type Keyframe struct {
	At    float64           `json:"at"`
	Props map[string]string `json:"props"`
}

// Track is one named animation: a set of keyframes plus the timing
// parameters of the generated animation shorthand.
type Track struct {
	Name       string     `json:"name"`
	DurationMS int        `json:"durationMs"`
	Easing     string     `json:"easing"`
	Iterations int        `json:"iterations"` // 0 means infinite
	Keyframes  []Keyframe `json:"keyframes"`
}

// validate checks offsets and keyframe presence.
func (t *Track) validate() error {
	if len(t.Keyframes) == 0 {
		return fmt.Errorf("%w: %q", ErrNoKeyframes, t.Name)
	}
	for _, k := range t.Keyframes {
		if k.At < 0 || k.At > 100 {
			return fmt.Errorf("%w: %v in %q", ErrBadOffset, k.At, t.Name)
		}
	}
	return nil
}

// sortedKeyframes returns the track's keyframes ordered by offset
// without modifying the track.
func (t *Track) sortedKeyframes() []Keyframe {
	sorted := make([]Keyframe, len(t.Keyframes))
	copy(sorted, t.Keyframes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At < sorted[j].At
	})
	return sorted
}

// CSS renders the track as an @keyframes block plus a class rule
// applying the animation.
func (t *Track) CSS() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", t.Name)
	for _, k := range t.sortedKeyframes() {
		fmt.Fprintf(&b, "  %s {", formatPercent(k.At))
		props := make([]string, 0, len(k.Props))
		for name := range k.Props {
			props = append(props, name)
		}
		sort.Strings(props)
		for _, name := range props {
			fmt.Fprintf(&b, " %s: %s;", name, k.Props[name])
		}
		b.WriteString(" }\n")
	}
	b.WriteString("}\n\n")

	easing := t.Easing
	if easing == "" {
		easing = "ease"
	}
	iter := "infinite"
	if t.Iterations > 0 {
		iter = fmt.Sprintf("%d", t.Iterations)
	}
	fmt.Fprintf(&b, ".%s {\n  animation: %s %dms %s %s;\n}\n",
		t.Name, t.Name, t.DurationMS, easing, iter)
	return b.String(), nil
}

// Timeline is a set of tracks exported together.
type Timeline struct {
	Tracks []Track `json:"tracks"`
}

// CSS concatenates the CSS of every track.
func (tl *Timeline) CSS() (string, error) {
	var b strings.Builder
	for i := range tl.Tracks {
		css, err := tl.Tracks[i].CSS()
		if err != nil {
			return "", err
		}
		b.WriteString(css)
	}
	return b.String(), nil
}

// JSON renders the timeline as indented JSON, keyframes sorted by
// offset so the export is stable.
func (tl *Timeline) JSON() ([]byte, error) {
	stable := Timeline{Tracks: make([]Track, len(tl.Tracks))}
	for i := range tl.Tracks {
		if err := tl.Tracks[i].validate(); err != nil {
			return nil, err
		}
		stable.Tracks[i] = tl.Tracks[i]
		stable.Tracks[i].Keyframes = tl.Tracks[i].sortedKeyframes()
	}
	return json.MarshalIndent(&stable, "", "  ")
}

// formatPercent renders an offset like CSS authors write them: "0%",
// "37.5%", "100%".
func formatPercent(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return s + "%"
}
