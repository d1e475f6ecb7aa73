package sqlite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hearth/internal/core/ports"
)

// NodeID is the unique identifier for the SQLite store opener Graft node.
const NodeID graft.ID = "adapter.sqlite"

func init() {
	graft.Register(graft.Node[ports.StoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreOpener, error) {
			return Opener{}, nil
		},
	})
}
