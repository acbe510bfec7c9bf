package ports

import (
	"context"

	"go.trai.ch/relock/internal/core/domain"
)

// DriftChecker inspects version-control state for the pinned files.
//
//go:generate go run go.uber.org/mock/mockgen -source=drift.go -destination=mocks/mock_drift.go -package=mocks
type DriftChecker interface {
	// Status returns the working-tree changes under root, limited to the
	// given pathspecs. An empty pathspec list checks the whole tree.
	Status(ctx context.Context, root string, pathspecs []string) (domain.Drift, error)

	// Diff returns a human-readable diff for the given pathspecs,
	// used for reporting only.
	Diff(ctx context.Context, root string, pathspecs []string) (string, error)
}
