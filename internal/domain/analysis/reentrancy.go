package analysis

import (
	"regexp"
	"strings"

	"github.com/solaudit/solaudit/internal/domain"
)

const reentrancyWindow = 5

// externalCallPatterns mark lines that hand control to another contract.
var externalCallPatterns = []string{
	"call{value",
	".call.value(",
	".send(",
	".transfer(",
}

// stateMutationRe matches simple state writes: `x = ...`, `x += ...`,
// `x++`, `x--`, including indexed targets like `balances[k] -= v`. The
// `[^=>]` guard keeps `==` comparisons and `=>` mapping arrows from
// counting as writes.
var stateMutationRe = regexp.MustCompile(`[\w\)\]]\s*[+\-*/%&|^]?=[^=>]|\+\+|--`)

var reentrancySuggestions = []string{
	"Apply the checks-effects-interactions pattern",
	"Update contract state before making external calls",
	"Add a reentrancy guard such as OpenZeppelin's ReentrancyGuard",
}

// detectReentrancy reports every external-call pattern on a line, then looks
// at the following lines for a state write. A write after the call is the
// classic reentrancy window and is Critical; the bare call is High.
func detectReentrancy(src *Source) []domain.Finding {
	var findings []domain.Finding

	for i, line := range src.Lines {
		for _, pattern := range externalCallPatterns {
			if !strings.Contains(line.Text, pattern) {
				continue
			}

			severity := domain.SeverityHigh
			description := "External call detected; verify state is settled before control leaves the contract."
			limit := scanLimit(src, i, reentrancyWindow)
			for j := i + 1; j < limit; j++ {
				if stateMutationRe.MatchString(src.Lines[j].Text) {
					severity = domain.SeverityCritical
					description = "State is mutated after an external call, opening a reentrancy window."
					break
				}
			}

			findings = append(findings, domain.Finding{
				Title:       "Potential Reentrancy Vulnerability",
				Severity:    severity,
				Line:        line.Num,
				Description: description,
				Snippet:     strings.TrimSpace(line.Text),
				Suggestions: reentrancySuggestions,
				Categories:  []domain.Category{domain.CategorySecurity},
			})
		}
	}
	return findings
}
