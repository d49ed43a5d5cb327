package analysis

import (
	"regexp"
	"strings"

	"github.com/solaudit/solaudit/internal/domain"
)

const accessControlWindow = 10

var publicFunctionRe = regexp.MustCompile(`\bfunction\s+\w+[^;{]*\b(public|external)\b`)

var accessGuardPatterns = []string{
	"onlyOwner",
	"require(msg.sender",
	"modifier",
}

var accessControlSuggestions = []string{
	"Restrict the function with onlyOwner or a custom modifier",
	"Check msg.sender against an authorized address with require",
}

// detectAccessControl flags public or external functions with no visible
// authorization guard, either inline in the declaration or in the body.
// The legacy body scan stops after ten lines or at the first closing brace.
func detectAccessControl(src *Source) []domain.Finding {
	var findings []domain.Finding

	for i, line := range src.Lines {
		if !publicFunctionRe.MatchString(line.Text) {
			continue
		}
		if hasAccessGuard(line.Text) {
			continue
		}

		guarded := false
		limit := scanLimit(src, i, accessControlWindow)
		for j := i + 1; j < limit; j++ {
			if hasAccessGuard(src.Lines[j].Text) {
				guarded = true
				break
			}
			if src.Mode != domain.WindowModeScoped && strings.Contains(src.Lines[j].Text, "}") {
				break
			}
		}
		if guarded {
			continue
		}

		findings = append(findings, domain.Finding{
			Title:       "Missing Access Control",
			Severity:    domain.SeverityHigh,
			Line:        line.Num,
			Description: "Publicly callable function has no authorization check; anyone can invoke it.",
			Snippet:     strings.TrimSpace(line.Text),
			Suggestions: accessControlSuggestions,
			Categories:  []domain.Category{domain.CategorySecurity},
		})
	}
	return findings
}

func hasAccessGuard(text string) bool {
	for _, g := range accessGuardPatterns {
		if strings.Contains(text, g) {
			return true
		}
	}
	return false
}
