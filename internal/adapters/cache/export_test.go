package cache

// Hits returns the access counter of path, or 0 when it is not cached.
func (c *LFU) Hits(path string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[path]; ok {
		return e.hits
	}
	return 0
}

// Contains reports whether path is cached.
func (c *LFU) Contains(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[path]
	return ok
}
