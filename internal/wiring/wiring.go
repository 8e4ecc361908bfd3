// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ldx/internal/adapters/cache"
	_ "go.trai.ch/ldx/internal/adapters/configfile"
	_ "go.trai.ch/ldx/internal/adapters/install"
	_ "go.trai.ch/ldx/internal/adapters/ldconsole"
	_ "go.trai.ch/ldx/internal/adapters/logger"
	_ "go.trai.ch/ldx/internal/adapters/plan"
	_ "go.trai.ch/ldx/internal/adapters/userconfig"
	_ "go.trai.ch/ldx/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ldx/internal/app"
)
