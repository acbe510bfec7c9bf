// Package config provides the configuration loader for relock.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "relock.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	// Filename is the configuration file name or path.
	// Relative names are resolved against the working directory passed to Load.
	Filename string
}

// NewLoader creates a Loader for the default configuration file.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory.
// A missing file yields the built-in defaults; a present but invalid
// file is an error.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Relockfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return fromFile(&file)
}

// defaults returns the configuration used when no relock.yaml exists.
func defaults() *domain.Config {
	return &domain.Config{
		ProjectFile: "pyproject.toml",
		DevSpecFile: filepath.Join("requirements", "dev.in"),
		OutputDir:   "requirements",
		StateFile:   filepath.Join(".relock", "state.json"),
		Resolver: domain.ResolverSpec{
			Command:     []string{"uv", "pip", "compile"},
			UpgradeFlag: "--upgrade",
		},
		Platforms: domain.AllPlatforms(),
	}
}

// fromFile validates the DTO and fills unset fields with defaults.
func fromFile(file *Relockfile) (*domain.Config, error) {
	cfg := defaults()

	if file.Project != "" {
		cfg.ProjectFile = file.Project
	}
	if file.DevSpec != "" {
		cfg.DevSpecFile = file.DevSpec
	}
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if file.StateFile != "" {
		cfg.StateFile = file.StateFile
	}

	if len(file.Resolver.Command) > 0 {
		cfg.Resolver.Command = file.Resolver.Command
	}
	if cfg.Resolver.Command[0] == "" {
		return nil, zerr.With(domain.ErrInvalidConfig, "reason", "resolver command is empty")
	}
	cfg.Resolver.Args = file.Resolver.Args
	cfg.Resolver.Env = file.Resolver.Env
	if file.Resolver.UpgradeFlag != "" {
		cfg.Resolver.UpgradeFlag = file.Resolver.UpgradeFlag
	}

	if len(file.Platforms) > 0 {
		platforms := make([]domain.PlatformID, 0, len(file.Platforms))
		seen := make(map[domain.PlatformID]bool)
		for _, name := range file.Platforms {
			id, err := domain.ParsePlatformID(name)
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrInvalidConfig.Error())
			}
			if seen[id] {
				return nil, zerr.With(domain.ErrInvalidConfig, "duplicate_platform", name)
			}
			seen[id] = true
			platforms = append(platforms, id)
		}
		cfg.Platforms = platforms
	}

	return cfg, nil
}
