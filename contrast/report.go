package contrast

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reportPrinter formats ratios with locale-aware number rendering.
var reportPrinter = message.NewPrinter(language.English)

// Report renders a Markdown contrast report for the given pairs: one
// table row per pair with the computed ratio and the four WCAG
// verdicts.
func Report(title string, pairs []Pair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	if len(pairs) == 0 {
		b.WriteString("No color pairs evaluated.\n")
		return b.String()
	}

	b.WriteString("| Pair | Colors | Ratio | AA | AA Large | AAA | AAA Large |\n")
	b.WriteString("|------|--------|-------|----|----------|-----|-----------|\n")
	for _, p := range pairs {
		r := Evaluate(p.Foreground, p.Background)
		fmt.Fprintf(&b, "| %s | %s on %s | %s | %s | %s | %s | %s |\n",
			p.Name,
			p.Foreground.HexString(), p.Background.HexString(),
			reportPrinter.Sprintf("%.2f:1", r.Ratio),
			verdict(r.AANormal), verdict(r.AALarge),
			verdict(r.AAANormal), verdict(r.AAALarge))
	}
	return b.String()
}

// ReportHTML renders the Markdown report to a standalone HTML
// fragment.
func ReportHTML(title string, pairs []Pair) []byte {
	md := []byte(Report(title, pairs))
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(md, p, renderer)
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
