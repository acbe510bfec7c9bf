package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/logger"
	"go.trai.ch/relock/internal/core/ports"
)

const NodeID graft.ID = "adapter.pin_compiler"

func init() {
	graft.Register(graft.Node[ports.PinCompiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PinCompiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(log), nil
		},
	})
}
