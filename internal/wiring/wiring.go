// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/srccache/internal/adapters/compiler"
	_ "go.trai.ch/srccache/internal/adapters/config"
	_ "go.trai.ch/srccache/internal/adapters/fs"
	_ "go.trai.ch/srccache/internal/adapters/heap"
	_ "go.trai.ch/srccache/internal/adapters/logger"
	_ "go.trai.ch/srccache/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/srccache/internal/app"
	_ "go.trai.ch/srccache/internal/engine/compcache"
	_ "go.trai.ch/srccache/internal/engine/pipeline"
)
