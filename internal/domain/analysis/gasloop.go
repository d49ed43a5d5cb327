package analysis

import (
	"regexp"
	"strings"

	"github.com/solaudit/solaudit/internal/domain"
)

const gasLoopWindow = 10

var (
	forLoopRe      = regexp.MustCompile(`for\s*\(`)
	storageWriteRe = regexp.MustCompile(`\w+\[\w+\]\s*=[^=]`)
)

var gasLoopSuggestions = []string{
	"Cache storage values in memory before the loop",
	"Accumulate in a local variable and write to storage once after the loop",
}

// detectGasLoop looks for array/mapping writes inside a loop body. Only the
// first write per loop is reported; the finding points at the write, not at
// the loop header.
func detectGasLoop(src *Source) []domain.Finding {
	var findings []domain.Finding

	for i, line := range src.Lines {
		if !forLoopRe.MatchString(line.Text) {
			continue
		}

		limit := scanLimit(src, i, gasLoopWindow)
		for j := i + 1; j < limit; j++ {
			if !storageWriteRe.MatchString(src.Lines[j].Text) {
				continue
			}
			findings = append(findings, domain.Finding{
				Title:       "Gas-Heavy Storage Write in Loop",
				Severity:    domain.SeverityLow,
				Line:        src.Lines[j].Num,
				Description: "Writing to a storage array or mapping on every loop iteration repeats the SSTORE cost.",
				Snippet:     strings.TrimSpace(src.Lines[j].Text),
				Suggestions: gasLoopSuggestions,
				Categories:  []domain.Category{domain.CategoryGasEfficiency, domain.CategoryPerformance},
			})
			break
		}
	}
	return findings
}
