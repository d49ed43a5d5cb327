package markdown

import (
	"fmt"
	"strings"

	"github.com/solaudit/solaudit/internal/domain"
)

// Renderer implements domain.ReportRenderer as a Markdown document.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Render(report *domain.Report) string {
	var b strings.Builder

	b.WriteString("# Solidity Audit Report\n\n")
	fmt.Fprintf(&b, "**Overall Score**: %.1f / 10 (%s)\n\n", report.OverallScore, report.Grade())

	b.WriteString("## Category Scores\n\n")
	b.WriteString("| Category | Score |\n|---|---|\n")
	for _, row := range scoreRows(report.Scores) {
		fmt.Fprintf(&b, "| %s | %.1f |\n", row.label, row.score)
	}
	b.WriteString("\n")

	b.WriteString("## Findings\n\n")
	if len(report.Findings) == 0 {
		b.WriteString("No issues found.\n\n")
	}
	for i, f := range report.Findings {
		fmt.Fprintf(&b, "### %d. %s %s (line %d)\n\n", i+1, severityIcon(f.Severity), f.Title, f.Line)
		fmt.Fprintf(&b, "**Severity**: %s\n\n", f.Severity)
		fmt.Fprintf(&b, "%s\n\n", f.Description)
		if f.Snippet != "" {
			fmt.Fprintf(&b, "```solidity\n%s\n```\n\n", f.Snippet)
		}
		for _, s := range f.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recommendations\n\n")
	for _, s := range report.Suggestions {
		fmt.Fprintf(&b, "- [ ] %s\n", s)
	}

	return b.String()
}

type scoreRow struct {
	label string
	score float64
}

func scoreRows(s domain.CategoryScores) []scoreRow {
	return []scoreRow{
		{domain.CategorySecurity.Label(), s.Security},
		{domain.CategoryGasEfficiency.Label(), s.GasEfficiency},
		{domain.CategoryPerformance.Label(), s.Performance},
		{domain.CategoryCodeQuality.Label(), s.CodeQuality},
		{domain.CategoryDocumentation.Label(), s.Documentation},
	}
}

func severityIcon(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return "🔴"
	case domain.SeverityHigh:
		return "🟠"
	case domain.SeverityMedium:
		return "🟡"
	case domain.SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}
