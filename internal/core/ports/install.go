package ports

import "context"

// InstallRegistry is the persisted, ordered list of known installation roots.
//
//go:generate mockgen -source=install.go -destination=mocks/mock_install.go -package=mocks
type InstallRegistry interface {
	// Paths returns the registered roots in registration order.
	Paths() ([]string, error)
	// Add registers root unless already present and persists the list.
	// It reports whether the list changed.
	Add(root string) (bool, error)
	// Path returns the root at index i.
	Path(i int) (string, error)
}

// InstallLocator finds and validates installation roots.
type InstallLocator interface {
	// Locate walks upward from path to the nearest installation root.
	Locate(path string) (string, error)
	// Validate checks the directory layout under root and pings console.
	Validate(ctx context.Context, root string, console Console) error
}
