// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/multinode/internal/adapters/archive"
	_ "go.trai.ch/multinode/internal/adapters/config"
	_ "go.trai.ch/multinode/internal/adapters/detector"
	_ "go.trai.ch/multinode/internal/adapters/dist"
	_ "go.trai.ch/multinode/internal/adapters/fs"
	_ "go.trai.ch/multinode/internal/adapters/logger"
	_ "go.trai.ch/multinode/internal/adapters/project"
	_ "go.trai.ch/multinode/internal/adapters/shell"
	_ "go.trai.ch/multinode/internal/adapters/toolchain"
	// Register app nodes.
	_ "go.trai.ch/multinode/internal/app"
)
