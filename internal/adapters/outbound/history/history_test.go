package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaudit/solaudit/internal/adapters/outbound/history"
	"github.com/solaudit/solaudit/internal/domain"
)

func TestLoad_EmptyWhenNoHistory(t *testing.T) {
	h := history.New()

	entries, err := h.Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	first := domain.ScanEntry{
		Timestamp: "2026-08-30T10:00:00Z",
		Source:    "Vault.sol",
		Overall:   7.2,
		Findings:  3,
		Grade:     "B",
	}
	second := domain.ScanEntry{
		Timestamp:  "2026-08-30T11:00:00Z",
		CommitHash: "abc1234",
		Source:     "Vault.sol",
		Overall:    9.8,
		Findings:   0,
		Grade:      "A+",
	}

	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, second))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}
