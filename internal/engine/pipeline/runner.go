// Package pipeline orchestrates the per-platform resolver passes.
package pipeline

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configure a pipeline run.
type Options struct {
	// Upgrade passes the resolver's upgrade flag and bypasses the
	// input-hash cache.
	Upgrade bool

	// Parallelism bounds the number of platforms resolved concurrently.
	// Zero means one per CPU.
	Parallelism int

	// Root is the repository root the resolver runs in.
	Root string
}

// Result is the outcome for a single platform.
type Result struct {
	Platform domain.PlatformID
	Status   domain.VertexStatus
}

// Runner executes the two resolver passes for each requested platform.
// Platforms are independent and run concurrently; within a platform the
// runtime pass always completes before the dev pass, because the dev
// pass is constrained by the freshly written runtime pins.
type Runner struct {
	compiler  ports.PinCompiler
	hasher    ports.Hasher
	stores    ports.StateStoreOpener
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(
	compiler ports.PinCompiler,
	hasher ports.Hasher,
	stores ports.StateStoreOpener,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		compiler:  compiler,
		hasher:    hasher,
		stores:    stores,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run resolves pins for the given platforms.
func (r *Runner) Run(ctx context.Context, cfg *domain.Config, platforms []domain.PlatformID, opts Options) ([]Result, error) {
	if len(platforms) == 0 {
		return nil, domain.ErrNoPlatformsSelected
	}

	// The store lives where the run's configuration says it does. Opening
	// it here rather than at wiring time keeps it bound to cfg, not to
	// whatever file happened to exist when the components were built.
	store, err := r.stores.Open(statePath(cfg, opts))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open state store")
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	results := make([]Result, len(platforms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, id := range platforms {
		g.Go(func() error {
			status, err := r.runPlatform(gctx, cfg, store, id, opts)
			results[i] = Result{Platform: id, Status: status}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// statePath resolves the configured state file against the run root.
func statePath(cfg *domain.Config, opts Options) string {
	if filepath.IsAbs(cfg.StateFile) || opts.Root == "" {
		return cfg.StateFile
	}
	return filepath.Join(opts.Root, cfg.StateFile)
}

// runPlatform runs (or skips) the two passes for one platform.
func (r *Runner) runPlatform(ctx context.Context, cfg *domain.Config, store ports.StateStore, id domain.PlatformID, opts Options) (domain.VertexStatus, error) {
	platform, err := domain.PlatformFor(id)
	if err != nil {
		return domain.VertexStatusFailed, err
	}

	inputHash, err := r.hasher.ComputeInputHash(cfg, platform, opts.Root)
	if err != nil {
		return domain.VertexStatusFailed, zerr.Wrap(err, "failed to fingerprint inputs")
	}

	outputs := []string{
		platform.RuntimePath(cfg.OutputDir),
		platform.DevPath(cfg.OutputDir),
	}

	if !opts.Upgrade && r.isFresh(store, id, inputHash, outputs, opts.Root) {
		_, vertex := r.telemetry.Record(ctx, string(id))
		vertex.Cached()
		vertex.Complete(nil)
		r.logger.Info("pins for " + string(id) + " are up to date, skipping resolver")
		return domain.VertexStatusCached, nil
	}

	requests := []domain.CompileRequest{
		domain.RuntimeCompileRequest(cfg, platform, opts.Upgrade),
		domain.DevCompileRequest(cfg, platform, opts.Upgrade),
	}
	for _, req := range requests {
		req.WorkingDir = opts.Root
		if err := r.compile(ctx, req); err != nil {
			return domain.VertexStatusFailed, err
		}
	}

	outputHash, err := r.hasher.ComputeOutputHash(outputs, opts.Root)
	if err != nil {
		return domain.VertexStatusFailed, zerr.Wrap(err, "failed to fingerprint outputs")
	}

	if err := store.Put(domain.ResolutionRecord{
		Platform:   id,
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  time.Now().UTC(),
	}); err != nil {
		return domain.VertexStatusFailed, zerr.Wrap(err, "failed to record resolution state")
	}

	return domain.VertexStatusCompleted, nil
}

// isFresh reports whether the stored fingerprints still match the
// working tree, meaning the resolver run can be skipped.
func (r *Runner) isFresh(store ports.StateStore, id domain.PlatformID, inputHash string, outputs []string, root string) bool {
	record, err := store.Get(id)
	if err != nil || record == nil {
		return false
	}
	if record.InputHash != inputHash {
		return false
	}

	// Outputs may have been edited or deleted since the record was written.
	outputHash, err := r.hasher.ComputeOutputHash(outputs, root)
	if err != nil {
		return false
	}
	return outputHash == record.OutputHash
}

// compile runs a single resolver pass under a telemetry vertex.
func (r *Runner) compile(ctx context.Context, req domain.CompileRequest) error {
	vctx, vertex := r.telemetry.Record(ctx, req.Name())
	err := r.compiler.Compile(vctx, req, vertex.Stdout(), vertex.Stderr())
	vertex.Complete(err)
	if err != nil {
		return zerr.With(err, "platform", string(req.Platform.ID))
	}
	return nil
}
