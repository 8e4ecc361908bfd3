// Package cache provides a bounded in-memory store for decoded config files.
package cache

import (
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// entry is one cached file. mtime is the modification time observed before the payload was read.
type entry struct {
	value any
	mtime int64
	hits  uint64
	seq   uint64
}

// LFU caches decoded files keyed by absolute path.
//
// A payload is served only while the file's mtime equals the recorded one. When a new key is
// inserted at capacity, the entry with the fewest hits is evicted; ties go to the oldest insertion.
type LFU struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*entry
	nextSeq  uint64
	stat     func(string) (os.FileInfo, error)
}

// Option configures an LFU.
type Option func(*LFU)

// WithStat replaces the function used to read modification times.
func WithStat(stat func(string) (os.FileInfo, error)) Option {
	return func(c *LFU) {
		c.stat = stat
	}
}

// New creates a cache holding at most capacity entries. A non-positive capacity
// uses domain.DefaultCacheCapacity.
func New(capacity int, opts ...Option) *LFU {
	if capacity <= 0 {
		capacity = domain.DefaultCacheCapacity
	}
	c := &LFU{
		capacity: capacity,
		entries:  make(map[string]*entry, capacity),
		stat:     os.Stat,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.FileCache = (*LFU)(nil)

// Get returns the payload for path, loading it when absent or stale.
func (c *LFU) Get(path string, load ports.Loader) (any, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := c.stat(key)
	if err != nil {
		delete(c.entries, key)
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", key)
	}
	mtime := info.ModTime().UnixNano()

	if e, ok := c.entries[key]; ok && e.mtime == mtime {
		e.hits++
		return e.value, nil
	}

	value, err := load(key)
	if err != nil {
		return nil, err
	}
	c.store(key, value, mtime)
	return value, nil
}

// Put records value for path after the caller wrote the file.
func (c *LFU) Put(path string, value any) error {
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := c.stat(key)
	if err != nil {
		delete(c.entries, key)
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", key)
	}
	c.store(key, value, info.ModTime().UnixNano())
	return nil
}

// Invalidate drops the entry for path.
func (c *LFU) Invalidate(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached entries.
func (c *LFU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// store must be called with mu held. A reload resets the hit count and keeps the insertion order.
func (c *LFU) store(key string, value any, mtime int64) {
	if e, ok := c.entries[key]; ok {
		e.value, e.mtime, e.hits = value, mtime, 1
		return
	}
	if len(c.entries) >= c.capacity {
		c.evict()
	}
	c.nextSeq++
	c.entries[key] = &entry{value: value, mtime: mtime, hits: 1, seq: c.nextSeq}
}

func (c *LFU) evict() {
	var victim string
	var lowest *entry
	for key, e := range c.entries {
		if lowest == nil || e.hits < lowest.hits || (e.hits == lowest.hits && e.seq < lowest.seq) {
			victim, lowest = key, e
		}
	}
	if lowest != nil {
		delete(c.entries, victim)
	}
}
