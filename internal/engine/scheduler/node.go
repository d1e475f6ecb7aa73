package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hearth/internal/adapters/clock"
	"go.trai.ch/hearth/internal/adapters/telemetry"
	"go.trai.ch/hearth/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler factory Graft node.
const NodeID graft.ID = "engine.scheduler"

// Factory builds schedulers once the store for a plan has been opened.
type Factory struct {
	clock  ports.Clock
	tracer ports.Tracer
}

// NewFactory creates a Factory that hands clock and tracer to every scheduler.
func NewFactory(clock ports.Clock, tracer ports.Tracer) *Factory {
	return &Factory{clock: clock, tracer: tracer}
}

// New creates a Scheduler over store.
func (f *Factory) New(store ports.Store) *Scheduler {
	return NewScheduler(store, f.clock, f.tracer)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{clock.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(clk, tracer), nil
		},
	})
}
