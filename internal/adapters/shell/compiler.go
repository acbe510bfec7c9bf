// Package shell provides the resolver invocation adapter.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// compileCommandHint is exported to resolver subprocesses so generated
// file headers tell readers how to refresh the pins (pip-tools convention).
const compileCommandHint = "CUSTOM_COMPILE_COMMAND=relock upgrade"

// Compiler implements ports.PinCompiler using os/exec.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new Compiler.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{
		logger: logger,
	}
}

// Compile runs one resolver pass.
//
// The command line is built from the configured resolver invocation:
// command + args + spec file + "-o" output + "-c" per constraint file,
// plus the upgrade flag when requested. The environment merges (low to
// high priority) the system environment and the configured resolver env.
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest, stdout, stderr io.Writer) error {
	if len(req.Resolver.Command) == 0 {
		return zerr.With(domain.ErrInvalidConfig, "reason", "resolver command is empty")
	}

	argv := buildArgv(req)
	name := argv[0]
	cmdEnv := resolveEnvironment(os.Environ(), req.Resolver.Env)

	// Resolve the executable against the merged environment's PATH so a
	// resolver installed by an activated virtualenv is found first.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user configured command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	if req.WorkingDir != "" {
		cmd.Dir = req.WorkingDir
	}
	cmd.Env = cmdEnv
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	c.logger.Info("resolving " + req.Name() + ": " + strings.Join(argv, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1 // Unknown or signal
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		cmdErr := zerr.Wrap(err, domain.ErrCompileFailed.Error())
		cmdErr = zerr.With(cmdErr, "pass", req.Name())
		cmdErr = zerr.With(cmdErr, "output", req.OutputFile)
		return zerr.With(cmdErr, "exit_code", exitCode)
	}

	return nil
}

// buildArgv assembles the full resolver command line for a request.
func buildArgv(req domain.CompileRequest) []string {
	argv := make([]string, 0, len(req.Resolver.Command)+len(req.Resolver.Args)+len(req.ConstraintFiles)*2+4)
	argv = append(argv, req.Resolver.Command...)
	argv = append(argv, req.Resolver.Args...)
	argv = append(argv, req.SpecFile)
	argv = append(argv, "-o", req.OutputFile)
	for _, constraint := range req.ConstraintFiles {
		argv = append(argv, "-c", constraint)
	}
	if req.Upgrade && req.Resolver.UpgradeFlag != "" {
		argv = append(argv, req.Resolver.UpgradeFlag)
	}
	return argv
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv []string, resolverEnv map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	hintKey, hintVal, _ := strings.Cut(compileCommandHint, "=")
	if _, exists := envMap[hintKey]; !exists {
		envMap[hintKey] = hintVal
	}

	for k, v := range resolverEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of the given environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
