package injector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inject/internal/adapters/conda"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/inject/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/inject/internal/adapters/procenv" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/inject/internal/core/ports"
)

// NodeID is the unique identifier for the injector Graft node.
const NodeID graft.ID = "engine.injector"

func init() {
	graft.Register(graft.Node[*Injector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			conda.NodeID,
			procenv.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Injector, error) {
			manager, err := graft.Dep[ports.EnvironmentManager](ctx)
			if err != nil {
				return nil, err
			}

			paths, err := graft.Dep[ports.PathContext](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manager, paths, log), nil
		},
	})
}
