package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ldx/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/ldx/internal/core/ports"
)

// NodeID is the unique identifier for the watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

// Factory creates watchers that report file system errors through a shared logger.
type Factory struct {
	logger ports.Logger
}

var _ ports.WatcherFactory = (*Factory)(nil)

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewWatcher implements ports.WatcherFactory.
func (f *Factory) NewWatcher() (ports.Watcher, error) {
	w, err := NewWatcher(f.logger)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatcherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
