package analysis_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaudit/solaudit/internal/domain"
	"github.com/solaudit/solaudit/internal/domain/analysis"
)

const vulnerableSource = `pragma solidity ^0.4.24;

contract Vault {
    mapping(address => uint256) balances;

    function withdraw(uint256 amount) public {
        msg.sender.call{value: amount}("");
        balances[msg.sender] = balances[msg.sender] - amount;
    }

    function airdrop(uint256 count, uint256 amount) external {
        for (uint256 i = 0; i < count; i++) {
            claimed[i] = amount;
        }
    }
}`

func TestAnalyze_EmptyInput(t *testing.T) {
	report := analysis.Analyze("", analysis.Options{})

	assert.Empty(t, report.Findings)
	assert.NotNil(t, report.Findings, "findings serialize as [], not null")
	assert.Equal(t, 10.0, report.Scores.Security)
	assert.Equal(t, 10.0, report.Scores.GasEfficiency)
	assert.Equal(t, 10.0, report.Scores.Performance)
	assert.Equal(t, 10.0, report.Scores.CodeQuality)
	assert.Equal(t, 10.0, report.Scores.Documentation)
	assert.Equal(t, 10.0, report.OverallScore)
	assert.NotEmpty(t, report.Suggestions)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a, err := json.Marshal(analysis.Analyze(vulnerableSource, analysis.Options{}))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		b, err := json.Marshal(analysis.Analyze(vulnerableSource, analysis.Options{}))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "identical input must yield byte-identical reports")
	}
}

func TestAnalyze_FindingOrderIsDetectorThenLine(t *testing.T) {
	report := analysis.Analyze(vulnerableSource, analysis.Options{})
	require.NotEmpty(t, report.Findings)

	rank := map[string]int{
		"Potential Reentrancy Vulnerability":   0,
		"Potential Integer Overflow/Underflow": 1,
		"Gas-Heavy Storage Write in Loop":      2,
		"Missing Access Control":               3,
		"Missing NatSpec Documentation":        4,
	}

	lastRank, lastLine := -1, 0
	for _, f := range report.Findings {
		r, ok := rank[f.Title]
		require.True(t, ok, "unexpected title %q", f.Title)
		if r == lastRank {
			assert.GreaterOrEqual(t, f.Line, lastLine, "line order within detector")
		} else {
			assert.Greater(t, r, lastRank, "detector declaration order")
		}
		lastRank, lastLine = r, f.Line
	}
}

func TestAnalyze_FindingIDsUnique(t *testing.T) {
	// Two call patterns on the same line force an ID collision.
	report := analysis.Analyze(`a.send(x); b.transfer(y);`, analysis.Options{})

	seen := map[string]bool{}
	for _, f := range report.Findings {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
	assert.True(t, seen["reentrancy-1"])
	assert.True(t, seen["reentrancy-1-2"])
}

func TestAnalyze_KnownFindings(t *testing.T) {
	report := analysis.Analyze(vulnerableSource, analysis.Options{})

	var titles []string
	for _, f := range report.Findings {
		titles = append(titles, f.Title)
	}
	assert.Contains(t, titles, "Potential Reentrancy Vulnerability")
	assert.Contains(t, titles, "Potential Integer Overflow/Underflow")
	assert.Contains(t, titles, "Gas-Heavy Storage Write in Loop")
	assert.Contains(t, titles, "Missing Access Control")
	assert.Contains(t, titles, "Missing NatSpec Documentation")

	assert.Less(t, report.OverallScore, 10.0)
	assert.GreaterOrEqual(t, report.OverallScore, 1.0)
}

func TestAnalyze_SeverityClosedSet(t *testing.T) {
	valid := map[domain.Severity]bool{
		domain.SeverityCritical: true,
		domain.SeverityHigh:     true,
		domain.SeverityMedium:   true,
		domain.SeverityLow:      true,
		domain.SeverityInfo:     true,
	}

	report := analysis.Analyze(vulnerableSource, analysis.Options{})
	for _, f := range report.Findings {
		assert.True(t, valid[f.Severity], "severity %q outside the closed set", f.Severity)
	}
}

func TestAnalyze_ReportJSONShape(t *testing.T) {
	data, err := json.Marshal(analysis.Analyze("", analysis.Options{}))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"overallScore":10`)
	assert.Contains(t, text, `"findings":[]`)
	assert.Contains(t, text, `"security":10`)
	assert.Contains(t, text, `"gasEfficiency":10`)
}
