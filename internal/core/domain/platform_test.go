package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/core/domain"
)

func TestPlatformFor_Total(t *testing.T) {
	for _, id := range domain.AllPlatforms() {
		p, err := domain.PlatformFor(id)
		require.NoError(t, err, "platform %s must be supported", id)

		require.Equal(t, id, p.ID)
		require.NotEmpty(t, p.ActivateScript)
		require.NotEmpty(t, p.RuntimeName)
		require.NotEmpty(t, p.DevName)
		require.NotEqual(t, p.RuntimeName, p.DevName)
	}
}

func TestPlatformFor_Unknown(t *testing.T) {
	_, err := domain.PlatformFor("freebsd")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
}

func TestPlatformFor_WindowsActivateScript(t *testing.T) {
	p, err := domain.PlatformFor(domain.PlatformWindows)
	require.NoError(t, err)
	require.Equal(t, ".venv/Scripts/activate", p.ActivateScript)

	for _, id := range []domain.PlatformID{domain.PlatformLinux, domain.PlatformDarwin} {
		p, err := domain.PlatformFor(id)
		require.NoError(t, err)
		require.Equal(t, ".venv/bin/activate", p.ActivateScript)
	}
}

func TestPlatform_Paths(t *testing.T) {
	p, err := domain.PlatformFor(domain.PlatformLinux)
	require.NoError(t, err)

	require.Equal(t, filepath.Join("requirements", "linux.txt"), p.RuntimePath("requirements"))
	require.Equal(t, filepath.Join("requirements", "linux-dev.txt"), p.DevPath("requirements"))
}

func TestCurrentPlatform(t *testing.T) {
	// The test hosts are always inside the support matrix.
	id, err := domain.CurrentPlatform()
	require.NoError(t, err)

	_, err = domain.PlatformFor(id)
	require.NoError(t, err)
}

func TestParsePlatformID(t *testing.T) {
	id, err := domain.ParsePlatformID("darwin")
	require.NoError(t, err)
	require.Equal(t, domain.PlatformDarwin, id)

	_, err = domain.ParsePlatformID("macos")
	require.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
}
