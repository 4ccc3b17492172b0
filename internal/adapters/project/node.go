package project

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/grindlemire/graft"
	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/core/ports"
)

// NodeID is the unique identifier for the project reader Graft node.
const NodeID graft.ID = "adapter.project"

func init() {
	graft.Register(graft.Node[ports.ProjectReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.ProjectReader, error) {
			fsys, err := graft.Dep[billy.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(fsys), nil
		},
	})
}
