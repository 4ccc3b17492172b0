package fs

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the filesystem Graft node.
const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[billy.Filesystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (billy.Filesystem, error) {
			return New(), nil
		},
	})
}
