package ports

import (
	"context"

	"go.trai.ch/ldx/internal/core/domain"
)

// Console runs ldconsole operations.
//
//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// Invoke validates req against the named operation, spawns ldconsole once and
	// decodes its output into the operation's result shape.
	//
	// Usage errors are returned before anything is spawned.
	Invoke(ctx context.Context, operation string, req domain.Request) (domain.Result, error)

	// Ping runs the executable without arguments and fails unless it exits with status 0.
	Ping(ctx context.Context) error

	// Path returns the executable this console invokes.
	Path() string
}

// ConsoleFactory builds consoles for a given executable and output code page.
type ConsoleFactory interface {
	// NewConsole returns a console invoking path. An unknown encoding is rejected here.
	NewConsole(path, encoding string) (Console, error)
}
