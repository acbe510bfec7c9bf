// Package cas implements the resolution state store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Opener implements ports.StateStoreOpener for file-backed stores.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the store at the given path. The file is created lazily on
// the first Put, so opening a path that does not exist yet is fine.
func (o *Opener) Open(path string) (ports.StateStore, error) {
	return NewStore(path)
}

// Store implements ports.StateStore using a flat JSON file keyed by platform.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[domain.PlatformID]domain.ResolutionRecord
}

// NewStore creates a StateStore backed by the file at the given path.
// A missing file is treated as an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[domain.PlatformID]domain.ResolutionRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for state file")
	}

	// Atomic replace so a crashed run never leaves a truncated state file.
	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.Wrap(err, "failed to replace state file")
	}

	return nil
}

// Get retrieves the record for a platform.
func (s *Store) Get(platform domain.PlatformID) (*domain.ResolutionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[platform]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record, replacing any previous one for the platform.
func (s *Store) Put(record domain.ResolutionRecord) error {
	s.mu.Lock()
	s.cache[record.Platform] = record
	s.mu.Unlock()

	return s.save()
}
