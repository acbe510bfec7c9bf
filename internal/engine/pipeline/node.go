package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/cas"
	"go.trai.ch/relock/internal/adapters/fs"
	"go.trai.ch/relock/internal/adapters/logger"
	"go.trai.ch/relock/internal/adapters/shell"
	"go.trai.ch/relock/internal/adapters/telemetry/progrock"
	"go.trai.ch/relock/internal/core/ports"
)

const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.NodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			compiler, err := graft.Dep[ports.PinCompiler](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			stores, err := graft.Dep[ports.StateStoreOpener](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(compiler, hasher, stores, telemetry, log), nil
		},
	})
}
