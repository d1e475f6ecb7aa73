package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hearth/internal/adapters/logger"
	"go.trai.ch/hearth/internal/core/ports"
)

// NodeID is the unique identifier for the plan watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

// Factory creates a new plan watcher. Only long-running commands ask for one.
type Factory func() (ports.Watcher, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func() (ports.Watcher, error) {
				return NewWatcher(log)
			}, nil
		},
	})
}
