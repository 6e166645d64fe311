package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inject/internal/core/ports"
)

// NodeID is the unique identifier for the environment manager Graft node.
const NodeID graft.ID = "adapter.environment_manager"

func init() {
	graft.Register(graft.Node[ports.EnvironmentManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentManager, error) {
			return NewClient(), nil
		},
	})
}
