package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
)

// NodeID is the unique identifier for the config cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.FileCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileCache, error) {
			return New(domain.DefaultCacheCapacity), nil
		},
	})
}
