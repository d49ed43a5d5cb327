package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solaudit/solaudit/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityCritical: lipgloss.NewStyle().Foreground(danger).Bold(true),
		domain.SeverityHigh:     lipgloss.NewStyle().Foreground(danger),
		domain.SeverityMedium:   lipgloss.NewStyle().Foreground(warning),
		domain.SeverityLow:      lipgloss.NewStyle().Foreground(success),
		domain.SeverityInfo:     lipgloss.NewStyle().Foreground(info),
	}
)

// RenderReport formats a full audit report for the terminal.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	grade := report.Grade()
	title := headerStyle.Render("solaudit")
	subtitle := dimStyle.Render("Smart Contract Audit Score")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(report.OverallScore)).
		Render(fmt.Sprintf("%.1f / 10", report.OverallScore))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(report.OverallScore)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	for _, cat := range categoryRows(report.Scores) {
		renderCategory(&b, cat.label, cat.score)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	if len(report.Findings) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Findings"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d total", len(report.Findings))))
		b.WriteString("\n\n")
		for _, f := range report.Findings {
			renderFinding(&b, f)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Checklist") + "\n\n")
	for _, s := range report.Suggestions {
		fmt.Fprintf(&b, "    %s %s\n", faintStyle.Render("•"), dimStyle.Render(s))
	}

	b.WriteString("\n")
	return b.String()
}

type categoryRow struct {
	label string
	score float64
}

func categoryRows(s domain.CategoryScores) []categoryRow {
	return []categoryRow{
		{domain.CategorySecurity.Label(), s.Security},
		{domain.CategoryGasEfficiency.Label(), s.GasEfficiency},
		{domain.CategoryPerformance.Label(), s.Performance},
		{domain.CategoryCodeQuality.Label(), s.CodeQuality},
		{domain.CategoryDocumentation.Label(), s.Documentation},
	}
}

func renderCategory(b *strings.Builder, label string, score float64) {
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%4.1f", score))
	bar := coloredBar(score, 20)
	name := catNameStyle.Render(padRight(label, 20))
	fmt.Fprintf(b, "  %s %s  %s\n", name, bar, scoreText)
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	tag := severityStyles[f.Severity].Render(padRight(string(f.Severity), 8))
	fmt.Fprintf(b, "    %s %s  %s\n", tag, titleStyle.Render(f.Title), dimStyle.Render(fmt.Sprintf("line %d", f.Line)))
	if f.Snippet != "" {
		fmt.Fprintf(b, "             %s\n", faintStyle.Render(f.Snippet))
	}
	fmt.Fprintf(b, "             %s\n", dimStyle.Render(f.Description))
}

func coloredBar(score float64, width int) string {
	filled := int(score / 10 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 8:
		return success
	case score >= 6:
		return lipgloss.Color("#A3E635") // lime
	case score >= 4:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats scan history for terminal output.
func RenderHistory(entries []domain.ScanEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No scan history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Scan History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Overall)).
			Render(fmt.Sprintf("%.1f/10", e.Overall))

		line := fmt.Sprintf("  %s  %s  %s  %s  %s  %s",
			dimStyle.Render(day),
			faintStyle.Render(hash),
			scoreStyled,
			e.Grade,
			dimStyle.Render(fmt.Sprintf("%d findings", e.Findings)),
			titleStyle.Render(e.Source),
		)

		if i > 0 {
			diff := e.Overall - entries[i-1].Overall
			if diff > 0.05 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.1f", diff))
			} else if diff < -0.05 {
				line += "  " + severityStyles[domain.SeverityHigh].Render(fmt.Sprintf("↓%.1f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
