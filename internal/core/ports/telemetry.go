package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of resolver passes.
type Telemetry interface {
	// Record starts recording a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the standard output stream.
	Stdout() io.Writer

	// Stderr returns a writer capturing the error output stream.
	Stderr() io.Writer

	// Complete marks the vertex as finished, successfully if err is nil.
	Complete(err error)

	// Cached marks the vertex as skipped because its inputs were unchanged.
	Cached()
}
