package domain

// ResolverSpec describes the external dependency-resolution command.
// Relock never resolves dependency graphs itself; it only invokes this tool.
type ResolverSpec struct {
	// Command is the resolver invocation prefix (e.g. ["uv", "pip", "compile"]).
	Command []string

	// Args are extra arguments appended to every invocation.
	Args []string

	// Env holds additional environment variables for resolver processes.
	Env map[string]string

	// UpgradeFlag is the flag that asks the resolver to ignore existing pins
	// and pick the newest satisfying versions (e.g. "--upgrade").
	UpgradeFlag string
}

// Config is the validated tool configuration.
type Config struct {
	// ProjectFile is the packaging metadata file declaring runtime dependencies.
	ProjectFile string

	// DevSpecFile is the abstract development requirements spec.
	DevSpecFile string

	// OutputDir is the directory holding the pinned requirement files.
	OutputDir string

	// StateFile is the JSON file recording resolution fingerprints.
	StateFile string

	// Resolver is the external resolver invocation.
	Resolver ResolverSpec

	// Platforms is the set of platforms this repository pins for.
	Platforms []PlatformID
}

// PinnedPaths returns the pinned requirement paths for all configured platforms.
// These are the pathspecs the drift check is limited to.
func (c *Config) PinnedPaths() ([]string, error) {
	paths := make([]string, 0, len(c.Platforms)*2)
	for _, id := range c.Platforms {
		p, err := PlatformFor(id)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p.RuntimePath(c.OutputDir), p.DevPath(c.OutputDir))
	}
	return paths, nil
}
