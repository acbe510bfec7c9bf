// Package main is the entry point for the relock tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/cmd/relock/commands"
	"go.trai.ch/relock/internal/adapters/config"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
	_ "go.trai.ch/relock/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)
	cli.SetConfigHook(func(path string) {
		if loader, ok := components.ConfigLoader.(*config.Loader); ok {
			loader.Filename = path
		}
	})

	// 3. Execution
	execErr := cli.Execute(ctx)

	// Flush recorded progress before reporting the outcome.
	if err := components.Telemetry.Close(); err != nil {
		components.Logger.Warn("failed to flush telemetry: " + err.Error())
	}

	if execErr != nil {
		if errors.Is(execErr, domain.ErrPinsOutOfDate) {
			// Drift details were already reported by the app layer.
			return 1
		}
		components.Logger.Error(execErr)
		return 1
	}
	return 0
}
