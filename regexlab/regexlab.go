// Package regexlab evaluates regular expressions against sample
// inputs and reports every match with group captures and byte spans.
package regexlab

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Error kinds reported by Run.
var (
	ErrBadPattern = errors.New("regexlab: pattern does not compile")
	ErrBadFlag    = errors.New("regexlab: unknown flag")
)

// Group is one capture inside a match. Start and End are byte offsets
// into the input; a group that did not participate has Start == -1.
type Group struct {
	Name  string `json:"name,omitempty"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Match is one occurrence of the pattern in an input.
type Match struct {
	Text   string  `json:"text"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Groups []Group `json:"groups,omitempty"`
}

// Result is the evaluation of one input string.
type Result struct {
	Input   string  `json:"input"`
	Matched bool    `json:"matched"`
	Matches []Match `json:"matches,omitempty"`
}

// Report is the outcome of one Run: the normalized pattern plus one
// result per input, in input order.
type Report struct {
	Pattern string   `json:"pattern"`
	Results []Result `json:"results"`
}

// Run compiles pattern with the given flag string and evaluates each
// input. Supported flags mirror the usual inline modifiers: i
// (case-insensitive), m (multi-line anchors), s (dot matches newline),
// U (ungreedy). Unknown flags fail with ErrBadFlag; an uncompilable
// pattern fails with ErrBadPattern.
func Run(pattern, flags string, inputs []string) (*Report, error) {
	full, err := applyFlags(pattern, flags)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(full)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPattern, err)
	}

	report := &Report{Pattern: full, Results: make([]Result, len(inputs))}
	names := re.SubexpNames()
	for i, input := range inputs {
		report.Results[i] = evaluate(re, names, input)
	}
	return report, nil
}

// applyFlags validates flags and prefixes the pattern with the
// corresponding inline modifier group.
func applyFlags(pattern, flags string) (string, error) {
	if flags == "" {
		return pattern, nil
	}
	for _, f := range flags {
		if !strings.ContainsRune("imsU", f) {
			return "", fmt.Errorf("%w: %q", ErrBadFlag, string(f))
		}
	}
	return "(?" + flags + ")" + pattern, nil
}

// evaluate runs one input, collecting all matches and their groups.
func evaluate(re *regexp.Regexp, names []string, input string) Result {
	idx := re.FindAllStringSubmatchIndex(input, -1)
	if idx == nil {
		return Result{Input: input}
	}

	res := Result{Input: input, Matched: true, Matches: make([]Match, len(idx))}
	for mi, spans := range idx {
		m := Match{
			Text:  input[spans[0]:spans[1]],
			Start: spans[0],
			End:   spans[1],
		}
		// spans[2k], spans[2k+1] bound capture group k; group 0 is
		// the whole match and is skipped.
		for g := 1; g*2+1 < len(spans); g++ {
			grp := Group{Name: names[g], Start: spans[g*2], End: spans[g*2+1]}
			if grp.Start >= 0 {
				grp.Text = input[grp.Start:grp.End]
			}
			m.Groups = append(m.Groups, grp)
		}
		res.Matches[mi] = m
	}
	return res
}
