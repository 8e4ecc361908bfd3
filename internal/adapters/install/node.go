package install

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ldx/internal/core/ports"
)

// NodeID is the unique identifier for the installation locator Graft node.
const NodeID graft.ID = "adapter.install"

func init() {
	graft.Register(graft.Node[ports.InstallLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallLocator, error) {
			return NewLocator(), nil
		},
	})
}
