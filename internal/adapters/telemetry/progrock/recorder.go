// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"
	"go.trai.ch/relock/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library.
// Each resolver pass becomes a vertex whose output, including the
// resolver's stderr, is rendered as it arrives.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a Recorder that renders progress as chronological plain
// text on the given writer. The console format works in CI logs and
// plain terminals alike.
func New(out io.Writer) *Recorder {
	return NewRecorder(console.NewWriter(out))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close completes the recording session and flushes any buffered output.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}
