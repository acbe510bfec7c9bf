package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/git"                //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Telemetry    ports.Telemetry
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			git.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[*pipeline.Runner](ctx)
			if err != nil {
				return nil, err
			}
			drift, err := graft.Dep[ports.DriftChecker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, runner, drift, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:          application,
				Logger:       log,
				ConfigLoader: loader,
				Telemetry:    telemetry,
			}, nil
		},
	})
}
