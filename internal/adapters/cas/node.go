package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

const NodeID graft.ID = "adapter.state_store"

func init() {
	// The opener carries no configuration. The store path comes from the
	// config of the run that opens it, so a --config override is honored.
	graft.Register(graft.Node[ports.StateStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
