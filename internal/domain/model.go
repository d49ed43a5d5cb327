package domain

import (
	"math"
	"strings"

	"github.com/fatih/camelcase"
)

// Severity classifies how dangerous a finding is. The set is closed:
// detectors never produce a value outside these five.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
	SeverityInfo     Severity = "Info"
)

// Weight returns the scoring penalty carried by this severity.
// The weight feeds the category buckets only; it is never shown directly.
func (s Severity) Weight() float64 {
	switch s {
	case SeverityCritical:
		return 10
	case SeverityHigh:
		return 7
	case SeverityMedium:
		return 5
	case SeverityLow:
		return 3
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

func (s Severity) String() string { return string(s) }

// Category identifies a scoring bucket. Each detector tags its findings
// with the categories they penalize, so the aggregator never has to infer
// membership from finding titles.
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryGasEfficiency Category = "gasEfficiency"
	CategoryPerformance   Category = "performance"
	CategoryCodeQuality   Category = "codeQuality"
	CategoryDocumentation Category = "documentation"
)

// Label returns the human form of a category identifier, e.g.
// "gasEfficiency" becomes "Gas Efficiency".
func (c Category) Label() string {
	words := camelcase.Split(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Finding is one reported issue: what matched, where, and how to fix it.
// Findings are immutable once produced by a detector.
type Finding struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Severity    Severity   `json:"severity"`
	Line        int        `json:"line"`
	Description string     `json:"description"`
	Snippet     string     `json:"snippet"`
	Suggestions []string   `json:"suggestions"`
	Categories  []Category `json:"categories"`
}

// CategoryScores holds the five 1-10 sub-scores of a report.
type CategoryScores struct {
	Security      float64 `json:"security"`
	GasEfficiency float64 `json:"gasEfficiency"`
	Performance   float64 `json:"performance"`
	CodeQuality   float64 `json:"codeQuality"`
	Documentation float64 `json:"documentation"`
}

// Report is the immutable result of one analysis run. It carries no
// reference to the source text or to any caller context; persistence and
// display are entirely the caller's concern.
type Report struct {
	OverallScore float64        `json:"overallScore"`
	Scores       CategoryScores `json:"scores"`
	Findings     []Finding      `json:"findings"`
	Suggestions  []string       `json:"suggestions"`
}

// Grade returns the letter grade for the report's overall score.
func (r Report) Grade() string { return GradeFor(r.OverallScore) }

// GradeFor maps a 1-10 overall score onto a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 9.5:
		return "A+"
	case score >= 8.5:
		return "A"
	case score >= 7:
		return "B"
	case score >= 5.5:
		return "C"
	case score >= 4:
		return "D"
	default:
		return "F"
	}
}

// RoundScore rounds an overall score to one decimal place.
func RoundScore(v float64) float64 {
	return math.Round(v*10) / 10
}

// ScanEntry is one line of scan history for a contract source.
type ScanEntry struct {
	Timestamp  string  `json:"timestamp"`
	CommitHash string  `json:"commit_hash,omitempty"`
	Source     string  `json:"source,omitempty"`
	Overall    float64 `json:"overall"`
	Findings   int     `json:"findings"`
	Grade      string  `json:"grade"`
}
