package ports

import "go.trai.ch/relock/internal/core/domain"

// Hasher defines the interface for computing resolution fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash fingerprints everything that determines a platform's
	// pins: the input spec files, the resolver invocation and the platform
	// file layout. Matching hashes mean a resolver run can be skipped.
	ComputeInputHash(cfg *domain.Config, platform domain.Platform, root string) (string, error)

	// ComputeOutputHash fingerprints the pinned output files.
	// Missing files are an error.
	ComputeOutputHash(paths []string, root string) (string, error)
}
