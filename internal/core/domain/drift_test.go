package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
)

func TestDrift_Dirty(t *testing.T) {
	var clean domain.Drift
	require.False(t, clean.Dirty())
	require.Equal(t, 0, clean.Count())
	require.Empty(t, clean.Paths())

	drift := domain.Drift{Entries: []domain.DriftEntry{
		{Kind: domain.DriftModified, Path: "requirements/linux.txt"},
		{Kind: domain.DriftUntracked, Path: "requirements/linux-dev.txt"},
	}}
	require.True(t, drift.Dirty())
	require.Equal(t, 2, drift.Count())
	require.Equal(t, []string{"requirements/linux.txt", "requirements/linux-dev.txt"}, drift.Paths())
}
