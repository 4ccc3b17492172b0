package app

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/grindlemire/graft"
	"go.trai.ch/multinode/internal/adapters/archive"
	"go.trai.ch/multinode/internal/adapters/config"
	"go.trai.ch/multinode/internal/adapters/detector"
	"go.trai.ch/multinode/internal/adapters/dist"
	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/adapters/logger"
	"go.trai.ch/multinode/internal/adapters/project"
	"go.trai.ch/multinode/internal/adapters/shell"
	"go.trai.ch/multinode/internal/adapters/toolchain"
	"go.trai.ch/multinode/internal/core/ports"
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
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			dist.NodeID,
			archive.NodeID,
			toolchain.NodeID,
			project.NodeID,
			detector.NodeID,
			fs.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
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
	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}
	extractor, err := graft.Dep[ports.Extractor](ctx)
	if err != nil {
		return nil, err
	}
	probe, err := graft.Dep[ports.Toolchain](ctx)
	if err != nil {
		return nil, err
	}
	reader, err := graft.Dep[ports.ProjectReader](ctx)
	if err != nil {
		return nil, err
	}
	terminal, err := graft.Dep[ports.Terminal](ctx)
	if err != nil {
		return nil, err
	}
	fsys, err := graft.Dep[billy.Filesystem](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, log, fetcher, extractor, probe, reader, terminal, fsys), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
