package analysis

import (
	"regexp"
	"strings"

	"github.com/solaudit/solaudit/internal/domain"
)

// natspecWindow is how many lines above a declaration may hold its doc
// comment. Doc comments sit directly above the function in both window
// modes, so this one is never brace-scoped.
const natspecWindow = 3

var functionDeclRe = regexp.MustCompile(`\bfunction\s+\w+`)

var natspecSuggestions = []string{
	"Document the function with /// or /** */ NatSpec comments",
}

// detectNatSpec reports functions whose preceding lines carry no NatSpec
// marker.
func detectNatSpec(src *Source) []domain.Finding {
	var findings []domain.Finding

	for i, line := range src.Lines {
		if !functionDeclRe.MatchString(line.Text) {
			continue
		}

		documented := false
		for j := i - 1; j >= 0 && j >= i-natspecWindow; j-- {
			text := src.Lines[j].Text
			if strings.Contains(text, "///") || strings.Contains(text, "/**") {
				documented = true
				break
			}
		}
		if documented {
			continue
		}

		findings = append(findings, domain.Finding{
			Title:       "Missing NatSpec Documentation",
			Severity:    domain.SeverityInfo,
			Line:        line.Num,
			Description: "Function has no NatSpec comment; callers and auditors get no documented intent.",
			Snippet:     strings.TrimSpace(line.Text),
			Suggestions: natspecSuggestions,
			Categories:  []domain.Category{domain.CategoryDocumentation},
		})
	}
	return findings
}
