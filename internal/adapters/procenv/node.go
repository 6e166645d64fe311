package procenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inject/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/inject/internal/core/ports"
)

// NodeID is the unique identifier for the path context Graft node.
const NodeID graft.ID = "adapter.path_context"

func init() {
	graft.Register(graft.Node[ports.PathContext]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.PathContext, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcess(settings.ModuleVar), nil
		},
	})
}
