package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inject/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/inject/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter detector Graft node.
const NodeID graft.ID = "adapter.interpreter_detector"

func init() {
	graft.Register(graft.Node[ports.InterpreterDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.InterpreterDetector, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			interp := settings.Interpreter
			return NewDetector(interp.Name, interp.Binary, interp.Version), nil
		},
	})
}
