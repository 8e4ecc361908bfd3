package ldconsole

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ldx/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/ldx/internal/core/ports"
)

// NodeID is the unique identifier for the console factory Graft node.
const NodeID graft.ID = "adapter.ldconsole"

func init() {
	graft.Register(graft.Node[ports.ConsoleFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConsoleFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
