package app

import (
	"go.trai.ch/inject/internal/adapters/config"
	"go.trai.ch/inject/internal/core/ports"
)

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *config.Settings
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger, settings *config.Settings) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Settings: settings,
	}
}
