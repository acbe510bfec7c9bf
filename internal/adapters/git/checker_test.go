package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/git"
	"go.trai.ch/relock/internal/core/domain"
)

func TestParsePorcelain_Empty(t *testing.T) {
	drift := git.ParsePorcelain(nil)
	require.False(t, drift.Dirty())

	drift = git.ParsePorcelain([]byte("\n"))
	require.False(t, drift.Dirty())
}

func TestParsePorcelain_Statuses(t *testing.T) {
	output := []byte(" M requirements/linux.txt\n" +
		"M  requirements/darwin.txt\n" +
		"?? requirements/windows-dev.txt\n" +
		" D requirements/windows.txt\n" +
		"A  requirements/darwin-dev.txt\n")

	drift := git.ParsePorcelain(output)
	require.True(t, drift.Dirty())
	require.Equal(t, 5, drift.Count())

	kinds := make(map[string]domain.DriftKind)
	for _, entry := range drift.Entries {
		kinds[entry.Path] = entry.Kind
	}

	require.Equal(t, domain.DriftModified, kinds["requirements/linux.txt"])
	require.Equal(t, domain.DriftModified, kinds["requirements/darwin.txt"])
	require.Equal(t, domain.DriftUntracked, kinds["requirements/windows-dev.txt"])
	require.Equal(t, domain.DriftDeleted, kinds["requirements/windows.txt"])
	require.Equal(t, domain.DriftAdded, kinds["requirements/darwin-dev.txt"])
}

func TestParsePorcelain_Rename(t *testing.T) {
	output := []byte("R  requirements/old.txt -> requirements/new.txt\n")

	drift := git.ParsePorcelain(output)
	require.Equal(t, 1, drift.Count())
	require.Equal(t, domain.DriftRenamed, drift.Entries[0].Kind)
	require.Equal(t, "requirements/new.txt", drift.Entries[0].Path)
}

func TestParsePorcelain_QuotedPath(t *testing.T) {
	output := []byte("?? \"requirements/with space.txt\"\n")

	drift := git.ParsePorcelain(output)
	require.Equal(t, 1, drift.Count())
	require.Equal(t, "requirements/with space.txt", drift.Entries[0].Path)
}
