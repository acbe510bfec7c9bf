package ports

import "go.trai.ch/relock/internal/core/domain"

// StateStore defines the interface for storing and retrieving resolution records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get retrieves the record for a platform.
	// Returns nil, nil if not found.
	Get(platform domain.PlatformID) (*domain.ResolutionRecord, error)

	// Put stores the record, replacing any previous one for the platform.
	Put(record domain.ResolutionRecord) error
}

// StateStoreOpener opens the state store for a configured file path.
// The store is opened per run, so the path always comes from the
// configuration the run actually uses.
type StateStoreOpener interface {
	// Open opens (or creates) the state store at the given path.
	Open(path string) (StateStore, error)
}
