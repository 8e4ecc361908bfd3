package configfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ldx/internal/adapters/cache" //nolint:depguard // Wired in node
	"go.trai.ch/ldx/internal/core/ports"
)

// NodeID is the unique identifier for the config store factory Graft node.
const NodeID graft.ID = "adapter.configfile"

func init() {
	graft.Register(graft.Node[ports.ConfigStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID},
		Run: func(ctx context.Context) (ports.ConfigStoreFactory, error) {
			c, err := graft.Dep[ports.FileCache](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(c), nil
		},
	})
}
