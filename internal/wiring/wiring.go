// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hearth/internal/adapters/clock"
	_ "go.trai.ch/hearth/internal/adapters/config"
	_ "go.trai.ch/hearth/internal/adapters/detector"
	_ "go.trai.ch/hearth/internal/adapters/logger"
	_ "go.trai.ch/hearth/internal/adapters/sqlite"
	_ "go.trai.ch/hearth/internal/adapters/telemetry"
	_ "go.trai.ch/hearth/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/hearth/internal/app"
	_ "go.trai.ch/hearth/internal/engine/scheduler"
)
