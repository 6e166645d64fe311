// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/inject/internal/adapters/conda"
	_ "go.trai.ch/inject/internal/adapters/config"
	_ "go.trai.ch/inject/internal/adapters/logger"
	_ "go.trai.ch/inject/internal/adapters/procenv"
	_ "go.trai.ch/inject/internal/adapters/python"
	_ "go.trai.ch/inject/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/inject/internal/app"
	_ "go.trai.ch/inject/internal/engine/injector"
)
