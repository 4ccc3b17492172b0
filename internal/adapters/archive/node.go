package archive

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/grindlemire/graft"
	"go.trai.ch/multinode/internal/adapters/fs"
	"go.trai.ch/multinode/internal/core/ports"
)

// NodeID is the unique identifier for the extractor Graft node.
const NodeID graft.ID = "adapter.extractor"

func init() {
	graft.Register(graft.Node[ports.Extractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.Extractor, error) {
			fsys, err := graft.Dep[billy.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(fsys), nil
		},
	})
}
