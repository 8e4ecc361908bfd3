package watcher

// Digests exposes the content filter to tests.
type Digests = digests

// NewDigests creates an empty content filter.
func NewDigests() *Digests { return newDigests() }

// Changed reports whether path's content differs from the last call.
func (d *Digests) Changed(path string) bool { return d.changed(path) }

// Forget clears the digest of path.
func (d *Digests) Forget(path string) { d.forget(path) }
