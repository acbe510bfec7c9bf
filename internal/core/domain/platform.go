// Package domain contains the core types for the relock tool.
package domain

import (
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
)

// PlatformID identifies one of the supported target operating systems.
type PlatformID string

const (
	// PlatformLinux targets Linux runners.
	PlatformLinux PlatformID = "linux"
	// PlatformDarwin targets macOS runners.
	PlatformDarwin PlatformID = "darwin"
	// PlatformWindows targets Windows runners.
	PlatformWindows PlatformID = "windows"
)

// Platform holds the per-OS file layout for pinned requirements.
// Each supported OS maps to exactly one virtualenv activation script
// and one pair of pinned requirement files.
type Platform struct {
	// ID is the platform identifier.
	ID PlatformID

	// ActivateScript is the virtualenv activation script path for this OS,
	// relative to the virtualenv root.
	ActivateScript string

	// RuntimeName is the base name of the pinned runtime requirements file.
	RuntimeName string

	// DevName is the base name of the pinned development requirements file.
	DevName string
}

// AllPlatforms returns the three supported platform identifiers in stable order.
func AllPlatforms() []PlatformID {
	return []PlatformID{PlatformLinux, PlatformDarwin, PlatformWindows}
}

// PlatformFor returns the file layout for the given platform identifier.
// The mapping is total over the three supported IDs; anything else
// returns ErrUnsupportedPlatform.
func PlatformFor(id PlatformID) (Platform, error) {
	switch id {
	case PlatformLinux:
		return Platform{
			ID:             PlatformLinux,
			ActivateScript: ".venv/bin/activate",
			RuntimeName:    "linux.txt",
			DevName:        "linux-dev.txt",
		}, nil
	case PlatformDarwin:
		return Platform{
			ID:             PlatformDarwin,
			ActivateScript: ".venv/bin/activate",
			RuntimeName:    "darwin.txt",
			DevName:        "darwin-dev.txt",
		}, nil
	case PlatformWindows:
		return Platform{
			ID:             PlatformWindows,
			ActivateScript: ".venv/Scripts/activate",
			RuntimeName:    "windows.txt",
			DevName:        "windows-dev.txt",
		}, nil
	default:
		return Platform{}, zerr.With(ErrUnsupportedPlatform, "platform", string(id))
	}
}

// CurrentPlatform maps the host operating system to a PlatformID.
// It returns ErrUnsupportedPlatform for hosts outside the support matrix.
func CurrentPlatform() (PlatformID, error) {
	switch runtime.GOOS {
	case "linux":
		return PlatformLinux, nil
	case "darwin":
		return PlatformDarwin, nil
	case "windows":
		return PlatformWindows, nil
	default:
		return "", zerr.With(ErrUnsupportedPlatform, "goos", runtime.GOOS)
	}
}

// ParsePlatformID validates a user-supplied platform name.
func ParsePlatformID(s string) (PlatformID, error) {
	id := PlatformID(s)
	if _, err := PlatformFor(id); err != nil {
		return "", err
	}
	return id, nil
}

// RuntimePath returns the pinned runtime requirements path under outputDir.
func (p Platform) RuntimePath(outputDir string) string {
	return filepath.Join(outputDir, p.RuntimeName)
}

// DevPath returns the pinned development requirements path under outputDir.
func (p Platform) DevPath(outputDir string) string {
	return filepath.Join(outputDir, p.DevName)
}
