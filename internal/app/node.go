package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hearth/internal/adapters/clock"
	"go.trai.ch/hearth/internal/adapters/config"
	"go.trai.ch/hearth/internal/adapters/detector"
	"go.trai.ch/hearth/internal/adapters/logger"
	"go.trai.ch/hearth/internal/adapters/sqlite"
	"go.trai.ch/hearth/internal/adapters/watcher"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/hearth/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sqlite.NodeID,
			scheduler.NodeID,
			logger.NodeID,
			clock.NodeID,
			watcher.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}
	opener, err := graft.Dep[ports.StoreOpener](ctx)
	if err != nil {
		return nil, err
	}
	schedulers, err := graft.Dep[*scheduler.Factory](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	clk, err := graft.Dep[ports.Clock](ctx)
	if err != nil {
		return nil, err
	}
	watchers, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}
	mode, err := graft.Dep[detector.OutputMode](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, opener, schedulers, log, clk, watchers, mode), nil
}
