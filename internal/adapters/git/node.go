package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

const NodeID graft.ID = "adapter.drift_checker"

func init() {
	graft.Register(graft.Node[ports.DriftChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DriftChecker, error) {
			return NewChecker(), nil
		},
	})
}
