package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/multinode/internal/core/ports"
)

// NodeID is the unique identifier for the terminal detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.Terminal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Terminal, error) {
			return NewTerminal(), nil
		},
	})
}
