package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Watch reports per-key changes of the instance and global configs until ctx is done or
// emit fails. Files that cannot be parsed are skipped with a warning.
func (s *Session) Watch(ctx context.Context, emit func(domain.ConfigChange) error) error {
	w, err := s.app.watchers.NewWatcher()
	if err != nil {
		return err
	}

	snapshots := s.snapshot()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, s.Installation.ConfigDir()); err != nil {
		_ = w.Stop()
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})

	g.Go(func() error {
		defer cancel()
		for event := range w.Events() {
			change, ok := s.apply(event, snapshots)
			if !ok {
				continue
			}
			if err := emit(change); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}

// snapshot loads the current settings of every config file the watch reports on.
func (s *Session) snapshot() map[string]domain.Settings {
	out := make(map[string]domain.Settings)

	if cfg, err := s.Stores.Global.Load(); err == nil {
		out[s.Installation.GlobalConfigPath()] = cfg.Settings
	}

	indices, err := s.Stores.Instances.List()
	if err != nil {
		s.app.logger.Warn("watch: cannot list instance configs: " + err.Error())
		return out
	}
	for _, i := range indices {
		if cfg, err := s.Stores.Instances.Load(i); err == nil {
			out[s.Installation.InstanceConfigPath(i)] = cfg.Settings
		}
	}
	return out
}

// apply turns a file event into a config change and updates the snapshot. It reports false
// for foreign files, unreadable files and writes that changed no setting.
func (s *Session) apply(event ports.WatchEvent, snapshots map[string]domain.Settings) (domain.ConfigChange, bool) {
	change := domain.ConfigChange{Path: event.Path}

	name := filepath.Base(event.Path)
	if index, ok := domain.ParseInstanceConfigName(name); ok {
		change.Index = index
	} else if name == domain.GlobalConfigFileName {
		change.Global = true
	} else {
		return change, false
	}

	s.app.cache.Invalidate(event.Path)

	before, known := snapshots[event.Path]
	if event.Operation == ports.OpRemove {
		delete(snapshots, event.Path)
		change.Removed = true
		return change, known
	}

	after, err := s.load(change)
	if err != nil {
		s.app.logger.Warn("watch: skipping " + name + ": " + err.Error())
		return change, false
	}
	snapshots[event.Path] = after

	change.Changes = domain.Diff(before, after)
	return change, len(change.Changes) > 0
}

func (s *Session) load(change domain.ConfigChange) (domain.Settings, error) {
	if change.Global {
		cfg, err := s.Stores.Global.Load()
		if err != nil {
			return nil, err
		}
		return cfg.Settings, nil
	}
	cfg, err := s.Stores.Instances.Load(change.Index)
	if err != nil {
		return nil, err
	}
	return cfg.Settings, nil
}
