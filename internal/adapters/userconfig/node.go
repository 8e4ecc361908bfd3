package userconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
)

// NodeID is the unique identifier for the installation registry Graft node.
const NodeID graft.ID = "adapter.userconfig"

func init() {
	graft.Register(graft.Node[ports.InstallRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallRegistry, error) {
			home, err := domain.UserHome()
			if err != nil {
				return nil, err
			}
			reg, err := Open(domain.DefaultUserConfigPath(home))
			if err != nil {
				return nil, err
			}
			return reg, nil
		},
	})
}
