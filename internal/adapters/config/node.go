package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inject/internal/core/ports"
)

const (
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
	// SpecLoaderNodeID is the unique identifier for the spec loader Graft node.
	SpecLoaderNodeID graft.ID = "adapter.spec_loader"
)

func init() {
	graft.Register(graft.Node[*Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Settings, error) {
			return LoadSettings(".")
		},
	})

	graft.Register(graft.Node[ports.SpecLoader]{
		ID:        SpecLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SpecLoader, error) {
			return NewSpecLoader(), nil
		},
	})
}
