package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaudit/solaudit/internal/domain"
)

func TestSeverityWeight(t *testing.T) {
	tests := []struct {
		severity domain.Severity
		weight   float64
	}{
		{domain.SeverityCritical, 10},
		{domain.SeverityHigh, 7},
		{domain.SeverityMedium, 5},
		{domain.SeverityLow, 3},
		{domain.SeverityInfo, 1},
		{domain.Severity("bogus"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.weight, tt.severity.Weight())
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Security", domain.CategorySecurity.Label())
	assert.Equal(t, "Gas Efficiency", domain.CategoryGasEfficiency.Label())
	assert.Equal(t, "Code Quality", domain.CategoryCodeQuality.Label())
	assert.Equal(t, "Documentation", domain.CategoryDocumentation.Label())
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		grade string
	}{
		{10, "A+"},
		{9.5, "A+"},
		{9.4, "A"},
		{8.5, "A"},
		{8.4, "B"},
		{7, "B"},
		{6.9, "C"},
		{5.5, "C"},
		{5.4, "D"},
		{4, "D"},
		{3.9, "F"},
		{1, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, domain.GradeFor(tt.score), "score %.1f", tt.score)
	}
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 7.6, domain.RoundScore(7.55))
	assert.Equal(t, 7.5, domain.RoundScore(7.54))
	assert.Equal(t, 10.0, domain.RoundScore(10))
}

func TestFindingSerializesSeverityAsString(t *testing.T) {
	f := domain.Finding{
		ID:         "reentrancy-5",
		Title:      "Potential Reentrancy Vulnerability",
		Severity:   domain.SeverityCritical,
		Line:       5,
		Categories: []domain.Category{domain.CategorySecurity},
	}

	raw, err := json.Marshal(f)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"severity":"Critical"`)
	assert.Contains(t, string(raw), `"categories":["security"]`)
	assert.Contains(t, string(raw), `"line":5`)
}

func TestReportGrade(t *testing.T) {
	r := domain.Report{OverallScore: 9.7}
	assert.Equal(t, "A+", r.Grade())
}
