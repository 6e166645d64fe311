package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inject/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/inject/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/inject/internal/adapters/python" //nolint:depguard // Wired in app layer
	"go.trai.ch/inject/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/inject/internal/core/ports"
	"go.trai.ch/inject/internal/engine/injector"
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
			injector.NodeID,
			config.SpecLoaderNodeID,
			python.NodeID,
			shell.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	inj, err := graft.Dep[*injector.Injector](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.SpecLoader](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.InterpreterDetector](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(inj, loader, detector, executor, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, settings), nil
}
