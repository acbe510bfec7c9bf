// Package app implements the application layer for relock.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Pipeline abstracts the resolver pipeline for the app layer.
//
//go:generate go run go.uber.org/mock/mockgen -source=app.go -destination=mocks/mock_pipeline.go -package=mocks
type Pipeline interface {
	Run(ctx context.Context, cfg *domain.Config, platforms []domain.PlatformID, opts pipeline.Options) ([]pipeline.Result, error)
}

// RunOptions control which platforms a verify or upgrade run covers.
type RunOptions struct {
	// Platforms is the explicit platform selection. Empty means the
	// current host platform, mirroring one CI job per OS.
	Platforms []domain.PlatformID

	// All selects every configured platform.
	All bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       Pipeline
	drift        ports.DriftChecker
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, runner Pipeline, drift ports.DriftChecker, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		drift:        drift,
		logger:       logger,
		out:          os.Stdout,
	}
}

// SetOutput sets the writer for diff and upgrade reports. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Verify regenerates the pins for the selected platforms and fails with
// ErrPinsOutOfDate if the working tree shows any change to the pinned
// files afterwards. This is the CI gate: checked-in pins must match what
// the resolver produces.
func (a *App) Verify(ctx context.Context, opts RunOptions) error {
	cfg, platforms, err := a.prepare(opts)
	if err != nil {
		return err
	}

	if _, err := a.runner.Run(ctx, cfg, platforms, pipeline.Options{Root: "."}); err != nil {
		return zerr.Wrap(err, "pin resolution failed")
	}

	paths, err := pinnedPaths(cfg, platforms)
	if err != nil {
		return err
	}

	drift, err := a.drift.Status(ctx, ".", paths)
	if err != nil {
		return zerr.Wrap(err, "failed to check working tree")
	}
	if !drift.Dirty() {
		a.logger.Info("pinned requirements are up to date")
		return nil
	}

	for _, entry := range drift.Entries {
		a.logger.Warn(string(entry.Kind) + ": " + entry.Path)
	}
	if diff, diffErr := a.drift.Diff(ctx, ".", paths); diffErr == nil && diff != "" {
		_, _ = fmt.Fprint(a.out, diff)
	}

	return zerr.With(domain.ErrPinsOutOfDate, "changed_files", drift.Count())
}

// Upgrade regenerates the pins with the resolver's upgrade flag and
// reports the resulting pin changes. Drift is expected here and never
// fails the run.
func (a *App) Upgrade(ctx context.Context, opts RunOptions) error {
	cfg, platforms, err := a.prepare(opts)
	if err != nil {
		return err
	}

	paths, err := pinnedPaths(cfg, platforms)
	if err != nil {
		return err
	}
	before := readPinSets(paths)

	if _, err := a.runner.Run(ctx, cfg, platforms, pipeline.Options{Root: ".", Upgrade: true}); err != nil {
		return zerr.Wrap(err, "pin resolution failed")
	}

	a.reportPinChanges(before, paths)

	drift, err := a.drift.Status(ctx, ".", paths)
	if err != nil {
		return zerr.Wrap(err, "failed to check working tree")
	}
	if drift.Dirty() {
		a.logger.Info(strconv.Itoa(drift.Count()) + " pinned file(s) changed, review and commit the result")
	} else {
		a.logger.Info("all pins already at their latest versions")
	}

	return nil
}

// prepare loads the configuration and resolves the platform selection.
func (a *App) prepare(opts RunOptions) (*domain.Config, []domain.PlatformID, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	platforms, err := selectPlatforms(cfg, opts)
	if err != nil {
		return nil, nil, err
	}
	return cfg, platforms, nil
}

// selectPlatforms picks the platforms a run covers: an explicit list,
// every configured platform, or the current host platform.
func selectPlatforms(cfg *domain.Config, opts RunOptions) ([]domain.PlatformID, error) {
	if opts.All {
		if len(cfg.Platforms) == 0 {
			return nil, domain.ErrNoPlatformsSelected
		}
		return cfg.Platforms, nil
	}

	if len(opts.Platforms) > 0 {
		for _, id := range opts.Platforms {
			if _, err := domain.PlatformFor(id); err != nil {
				return nil, err
			}
		}
		return opts.Platforms, nil
	}

	current, err := domain.CurrentPlatform()
	if err != nil {
		return nil, err
	}
	return []domain.PlatformID{current}, nil
}

// pinnedPaths returns the pinned file paths for the selected platforms.
func pinnedPaths(cfg *domain.Config, platforms []domain.PlatformID) ([]string, error) {
	paths := make([]string, 0, len(platforms)*2)
	for _, id := range platforms {
		p, err := domain.PlatformFor(id)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p.RuntimePath(cfg.OutputDir), p.DevPath(cfg.OutputDir))
	}
	return paths, nil
}

// readPinSets parses the given pinned files, treating missing or
// unparseable files as empty sets. Used only for upgrade reporting.
func readPinSets(paths []string) map[string]*domain.PinSet {
	sets := make(map[string]*domain.PinSet, len(paths))
	for _, path := range paths {
		sets[path] = readPinSet(path)
	}
	return sets
}

func readPinSet(path string) *domain.PinSet {
	empty, _ := domain.ParsePinSet(strings.NewReader(""))

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return empty
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	set, err := domain.ParsePinSet(f)
	if err != nil {
		return empty
	}
	return set
}

// reportPinChanges prints a human-readable summary of pin changes per file.
func (a *App) reportPinChanges(before map[string]*domain.PinSet, paths []string) {
	for _, path := range paths {
		old := before[path]
		current := readPinSet(path)
		delta := old.Diff(current)
		if delta.Empty() {
			continue
		}

		_, _ = fmt.Fprintf(a.out, "%s:\n", path)
		for _, change := range delta.Changed {
			_, _ = fmt.Fprintf(a.out, "  %s %s -> %s\n", change.Name.String(), change.Old, change.New)
		}
		for _, pin := range delta.Added {
			_, _ = fmt.Fprintf(a.out, "  + %s==%s\n", pin.Name.String(), pin.Version)
		}
		for _, pin := range delta.Removed {
			_, _ = fmt.Fprintf(a.out, "  - %s==%s\n", pin.Name.String(), pin.Version)
		}
	}
}
