package progrock

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry adapter node.
	NodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// Progress goes to stderr so stdout stays reserved for
			// diff and upgrade reports.
			return New(os.Stderr), nil
		},
	})
}
