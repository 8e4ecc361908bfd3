// Package watcher reports content changes of the files in one directory.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify. Writes that leave a file's content
// unchanged are dropped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	digests   *digests
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher. logger may be nil.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrWatchFailed, err.Error())
	}
	return &Watcher{
		fsWatcher: watcher,
		logger:    logger,
		digests:   newDigests(),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start watches the files directly inside dir. Existing files are hashed first so the
// first reported event is a real change.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrWatchFailed, err.Error()), "path", dir)
	}
	for _, e := range entries {
		if e.Type().IsRegular() {
			w.digests.changed(filepath.Join(dir, e.Name()))
		}
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrWatchFailed, err.Error()), "path", dir)
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents converts raw fsnotify events and forwards real changes.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watcher: file system error: " + err.Error())
			}
		}
	}
}

// convertEvent maps an fsnotify event to a ports.WatchEvent. It reports false for events
// that carry no content change.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := event.Name

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.digests.forget(path)
		return ports.WatchEvent{Path: path, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Create):
		if !w.digests.changed(path) {
			return ports.WatchEvent{}, false
		}
		return ports.WatchEvent{Path: path, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Write):
		if !w.digests.changed(path) {
			return ports.WatchEvent{}, false
		}
		return ports.WatchEvent{Path: path, Operation: ports.OpWrite}, true
	default:
		return ports.WatchEvent{}, false
	}
}

// digests remembers the xxhash of the last seen content of each file.
type digests struct {
	mu   sync.Mutex
	seen map[string]uint64
}

func newDigests() *digests {
	return &digests{seen: make(map[string]uint64)}
}

// changed hashes path and reports whether the content differs from the last call.
// Directories, unreadable files and empty files never count as changed. An empty file is
// a save that truncated but has not written yet.
func (d *digests) changed(path string) bool {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the watched directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.forget(path)
		}
		return false
	}
	if len(data) == 0 {
		return false
	}
	sum := xxhash.Sum64(data)

	d.mu.Lock()
	defer d.mu.Unlock()
	prev, ok := d.seen[path]
	d.seen[path] = sum
	return !ok || prev != sum
}

func (d *digests) forget(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, path)
}
