// Package fs provides filesystem fingerprinting for resolution inputs and outputs.
package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes resolution fingerprints with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash fingerprints everything that determines a platform's pins:
// the resolver invocation, the platform file layout and the content of the
// input spec files. A missing spec file is an error since the resolver could
// not run without it either.
func (h *Hasher) ComputeInputHash(cfg *domain.Config, platform domain.Platform, root string) (string, error) {
	hasher := xxhash.New()

	hashResolver(cfg.Resolver, hasher)
	hashPlatform(platform, hasher)

	for _, spec := range []string{cfg.ProjectFile, cfg.DevSpecFile} {
		if err := h.hashFile(filepath.Join(root, spec), hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeOutputHash fingerprints the pinned output files.
func (h *Hasher) ComputeOutputHash(paths []string, root string) (string, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	hasher := xxhash.New()

	for _, output := range sorted {
		path := filepath.Join(root, output)

		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return "", zerr.With(zerr.Wrap(iofs.ErrNotExist, "output file missing"), "path", path)
			}
			return "", zerr.With(zerr.Wrap(err, "failed to stat output file"), "path", path)
		}

		if err := h.hashFile(path, hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashResolver hashes the resolver command, args and env in deterministic order.
func hashResolver(spec domain.ResolverSpec, hasher *xxhash.Digest) {
	for _, part := range spec.Command {
		_, _ = hasher.WriteString(part)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, arg := range spec.Args {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	keys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(spec.Env[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

// hashPlatform hashes the platform file layout.
func hashPlatform(platform domain.Platform, hasher *xxhash.Digest) {
	for _, part := range []string{
		string(platform.ID),
		platform.ActivateScript,
		platform.RuntimeName,
		platform.DevName,
	} {
		_, _ = hasher.WriteString(part)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

func (h *Hasher) hashFile(path string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(filepath.Base(path)))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
