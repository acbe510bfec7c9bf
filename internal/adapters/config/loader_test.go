package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/config"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	loader := config.NewLoader()

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "pyproject.toml", cfg.ProjectFile)
	require.Equal(t, filepath.Join("requirements", "dev.in"), cfg.DevSpecFile)
	require.Equal(t, "requirements", cfg.OutputDir)
	require.Equal(t, []string{"uv", "pip", "compile"}, cfg.Resolver.Command)
	require.Equal(t, "--upgrade", cfg.Resolver.UpgradeFlag)
	require.Equal(t, domain.AllPlatforms(), cfg.Platforms)
}

func TestLoader_FullFile(t *testing.T) {
	dir := writeConfig(t, `
version: "1"
project: setup.cfg
dev_spec: dev-requirements.in
output_dir: pins
state_file: .cache/relock.json
resolver:
  command: ["pip-compile"]
  args: ["--no-header"]
  env:
    PIP_INDEX_URL: https://pypi.example.test/simple
  upgrade_flag: "-U"
platforms: [linux, windows]
`)

	cfg, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	require.Equal(t, "setup.cfg", cfg.ProjectFile)
	require.Equal(t, "dev-requirements.in", cfg.DevSpecFile)
	require.Equal(t, "pins", cfg.OutputDir)
	require.Equal(t, ".cache/relock.json", cfg.StateFile)
	require.Equal(t, []string{"pip-compile"}, cfg.Resolver.Command)
	require.Equal(t, []string{"--no-header"}, cfg.Resolver.Args)
	require.Equal(t, "https://pypi.example.test/simple", cfg.Resolver.Env["PIP_INDEX_URL"])
	require.Equal(t, "-U", cfg.Resolver.UpgradeFlag)
	require.Equal(t, []domain.PlatformID{domain.PlatformLinux, domain.PlatformWindows}, cfg.Platforms)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "project: setup.py\n")

	cfg, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	require.Equal(t, "setup.py", cfg.ProjectFile)
	require.Equal(t, "requirements", cfg.OutputDir)
	require.Equal(t, []string{"uv", "pip", "compile"}, cfg.Resolver.Command)
}

func TestLoader_UnknownPlatform(t *testing.T) {
	dir := writeConfig(t, "platforms: [linux, solaris]\n")

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
}

func TestLoader_DuplicatePlatform(t *testing.T) {
	dir := writeConfig(t, "platforms: [linux, linux]\n")

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestLoader_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "platforms: [unterminated\n")

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)

	_, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
}
