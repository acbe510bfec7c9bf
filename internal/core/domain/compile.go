package domain

// Pass identifies one of the two resolver passes run per platform.
type Pass string

const (
	// PassRuntime pins the runtime dependencies declared by the project file.
	PassRuntime Pass = "runtime"
	// PassDev pins the development dependencies, constrained by the runtime pins.
	PassDev Pass = "dev"
)

// CompileRequest describes a single resolver invocation: pin the dependencies
// declared in SpecFile into OutputFile for the given platform.
type CompileRequest struct {
	// Platform is the target platform the pins are produced for.
	Platform Platform

	// Pass distinguishes the runtime pass from the dev pass.
	Pass Pass

	// SpecFile is the abstract input spec handed to the resolver.
	SpecFile string

	// OutputFile is the pinned requirements file the resolver writes.
	OutputFile string

	// ConstraintFiles are passed with -c so the dev pass cannot drift
	// from the runtime pins.
	ConstraintFiles []string

	// Upgrade asks the resolver to ignore existing pins.
	Upgrade bool

	// WorkingDir is the directory the resolver runs in.
	WorkingDir string

	// Resolver is the external resolver invocation to use.
	Resolver ResolverSpec
}

// Name returns a stable human-readable identifier for the request,
// used for telemetry vertices and log lines.
func (r CompileRequest) Name() string {
	return string(r.Platform.ID) + "/" + string(r.Pass)
}

// RuntimeCompileRequest builds the runtime pass request for a platform.
func RuntimeCompileRequest(cfg *Config, p Platform, upgrade bool) CompileRequest {
	return CompileRequest{
		Platform:   p,
		Pass:       PassRuntime,
		SpecFile:   cfg.ProjectFile,
		OutputFile: p.RuntimePath(cfg.OutputDir),
		Upgrade:    upgrade,
		Resolver:   cfg.Resolver,
	}
}

// DevCompileRequest builds the dev pass request for a platform.
// The dev pass is constrained by the runtime pins, so it must run after
// the runtime pass has written its output.
func DevCompileRequest(cfg *Config, p Platform, upgrade bool) CompileRequest {
	return CompileRequest{
		Platform:        p,
		Pass:            PassDev,
		SpecFile:        cfg.DevSpecFile,
		OutputFile:      p.DevPath(cfg.OutputDir),
		ConstraintFiles: []string{p.RuntimePath(cfg.OutputDir)},
		Upgrade:         upgrade,
		Resolver:        cfg.Resolver,
	}
}
