// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vouch/internal/adapters/cache"
	_ "go.trai.ch/vouch/internal/adapters/config"
	_ "go.trai.ch/vouch/internal/adapters/fs"
	_ "go.trai.ch/vouch/internal/adapters/logger"
	_ "go.trai.ch/vouch/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/vouch/internal/app"
	_ "go.trai.ch/vouch/internal/engine/validator"
)
