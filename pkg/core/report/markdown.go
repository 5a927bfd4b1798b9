package report

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// RenderMarkdown produces a markdown digest of a run for API and dashboard
// consumers. The output is checked through goldmark before returning so
// downstream renderers never see a broken document.
func RenderMarkdown(results Results) (string, error) {
	var sb strings.Builder

	sb.WriteString("# DCF Valuation Summary\n\n")
	if results.RunID != "" {
		fmt.Fprintf(&sb, "Run `%s`\n\n", results.RunID)
	}

	sb.WriteString("## Scenarios\n\n")
	sb.WriteString("| Scenario | WACC | NPV | IRR |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, s := range results.Scenarios {
		irr := "n/a"
		if s.IRR != nil {
			irr = fmt.Sprintf("%.2f%%", *s.IRR*100)
		}
		fmt.Fprintf(&sb, "| %s | %.2f%% | %.2f | %s |\n", s.Name, s.WACC*100, s.NPV, irr)
	}

	if len(results.Sensitivity) > 0 {
		lo := results.Sensitivity[0]
		hi := results.Sensitivity[len(results.Sensitivity)-1]
		sb.WriteString("\n## WACC Sensitivity\n\n")
		fmt.Fprintf(&sb, "%d points from %.3f to %.3f; NPV ranges %.2f to %.2f.\n",
			len(results.Sensitivity), lo.WACC, hi.WACC, hi.NPV, lo.NPV)
	}

	md := sb.String()
	if !validMarkdown(md) {
		return "", fmt.Errorf("generated markdown failed to parse")
	}
	return md, nil
}

// validMarkdown runs the document through goldmark's parser. Goldmark is very
// permissive, so this is a structural smoke check.
func validMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader([]byte(input)))
	return doc != nil
}
