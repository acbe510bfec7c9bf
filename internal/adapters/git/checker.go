// Package git implements the drift checker using the git CLI.
// Git internals stay out of scope: the adapter only consumes porcelain
// output of the external binary.
package git

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Checker implements ports.DriftChecker by shelling out to git.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Status returns the working-tree changes under root, limited to pathspecs.
func (c *Checker) Status(ctx context.Context, root string, pathspecs []string) (domain.Drift, error) {
	args := []string{"status", "--porcelain=v1", "--untracked-files=all"}
	args = appendPathspecs(args, pathspecs)

	output, err := runGit(ctx, root, args)
	if err != nil {
		return domain.Drift{}, err
	}

	return ParsePorcelain(output), nil
}

// Diff returns the diff text for the given pathspecs, for reporting only.
func (c *Checker) Diff(ctx context.Context, root string, pathspecs []string) (string, error) {
	args := []string{"diff", "--no-color"}
	args = appendPathspecs(args, pathspecs)

	output, err := runGit(ctx, root, args)
	if err != nil {
		return "", err
	}

	return string(output), nil
}

func appendPathspecs(args, pathspecs []string) []string {
	if len(pathspecs) == 0 {
		return args
	}
	args = append(args, "--")
	return append(args, pathspecs...)
}

func runGit(ctx context.Context, root string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...) //nolint:gosec // fixed git subcommands
	if root != "" {
		cmd.Dir = root
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if strings.Contains(stderr, "not a git repository") {
				return nil, zerr.With(domain.ErrNotARepository, "root", root)
			}
			gitErr := zerr.Wrap(exitErr, "git command failed")
			gitErr = zerr.With(gitErr, "args", strings.Join(args, " "))
			gitErr = zerr.With(gitErr, "exit_code", exitErr.ExitCode())
			return nil, zerr.With(gitErr, "stderr", stderr)
		}
		return nil, zerr.Wrap(err, "failed to run git")
	}

	return output, nil
}

// ParsePorcelain parses `git status --porcelain=v1` output into a Drift.
// Each line is "XY PATH" where X is the index state and Y the work-tree
// state; renames carry an "old -> new" path pair.
func ParsePorcelain(output []byte) domain.Drift {
	var drift domain.Drift

	for _, line := range strings.Split(string(output), "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := line[3:]

		var kind domain.DriftKind
		switch {
		case code == "??":
			kind = domain.DriftUntracked
		case code[0] == 'R' || code[1] == 'R':
			kind = domain.DriftRenamed
			if _, newPath, ok := strings.Cut(path, " -> "); ok {
				path = newPath
			}
		case code[0] == 'D' || code[1] == 'D':
			kind = domain.DriftDeleted
		case code[0] == 'A' || code[1] == 'A':
			kind = domain.DriftAdded
		default:
			kind = domain.DriftModified
		}

		drift.Entries = append(drift.Entries, domain.DriftEntry{
			Kind: kind,
			Path: unquotePath(path),
		})
	}

	return drift
}

// unquotePath strips the C-style quoting git applies to paths with
// special characters. Escape sequences inside are left as-is; callers
// only use the path for reporting and counting.
func unquotePath(path string) string {
	if len(path) >= 2 && path[0] == '"' && path[len(path)-1] == '"' {
		return path[1 : len(path)-1]
	}
	return path
}
