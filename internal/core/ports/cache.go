package ports

// Loader reads and decodes the file at path.
type Loader func(path string) (any, error)

// FileCache keeps decoded files in memory while their modification time is unchanged.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type FileCache interface {
	// Get returns the cached payload for path, calling load when the entry is
	// missing or the file changed on disk.
	Get(path string, load Loader) (any, error)
	// Put stores value for path using the file's current modification time.
	Put(path string, value any) error
	// Invalidate drops the entry for path.
	Invalidate(path string)
	// Len returns the number of cached entries.
	Len() int
}
