// Package telemetry provides telemetry implementations.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/relock/internal/core/ports"
)

// Noop is a ports.Telemetry implementation that records nothing.
// It is used in tests and when progress rendering is disabled.
type Noop struct{}

// NewNoop creates a new no-op telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close is a no-op.
func (n *Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Stderr() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
func (noopVertex) Cached()           {}
