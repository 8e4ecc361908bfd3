package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ldx/internal/adapters/cache"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/adapters/configfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/adapters/install"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/adapters/ldconsole"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/adapters/plan"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/adapters/userconfig" //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ldx/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			userconfig.NodeID,
			install.NodeID,
			ldconsole.NodeID,
			configfile.NodeID,
			plan.NodeID,
			watcher.NodeID,
			cache.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.InstallRegistry](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.InstallLocator](ctx)
	if err != nil {
		return nil, err
	}

	consoles, err := graft.Dep[ports.ConsoleFactory](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.ConfigStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	plans, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	fileCache, err := graft.Dep[ports.FileCache](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, registry, locator, consoles, stores, plans, watchers, fileCache), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
