package app

import "go.trai.ch/hearth/internal/core/ports"

// Components holds the resolved application and the logger used to report
// errors that escape the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
