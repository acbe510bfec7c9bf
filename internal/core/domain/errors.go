package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when a platform identifier is outside the support matrix.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrPinsOutOfDate is returned when regenerating pins leaves uncommitted changes in the working tree.
	ErrPinsOutOfDate = zerr.New("pinned requirements out of date")

	// ErrCompileFailed is returned when the external resolver exits non-zero.
	ErrCompileFailed = zerr.New("resolver invocation failed")

	// ErrNotARepository is returned when the working directory is not inside a git work tree.
	ErrNotARepository = zerr.New("not a git repository")

	// ErrInvalidConfig is returned when the configuration file fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNoPlatformsSelected is returned when a run is requested with an empty platform set.
	ErrNoPlatformsSelected = zerr.New("no platforms selected")
)
