// Package app implements the application layer for ldx.
package app

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/ldx/internal/adapters/install" //nolint:depguard // Console discovery
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger   ports.Logger
	registry ports.InstallRegistry
	locator  ports.InstallLocator
	consoles ports.ConsoleFactory
	stores   ports.ConfigStoreFactory
	plans    ports.PlanLoader
	watchers ports.WatcherFactory
	cache    ports.FileCache
	lookPath func(file string) (string, error)
}

// New creates a new App instance.
func New(
	log ports.Logger,
	registry ports.InstallRegistry,
	locator ports.InstallLocator,
	consoles ports.ConsoleFactory,
	stores ports.ConfigStoreFactory,
	plans ports.PlanLoader,
	watchers ports.WatcherFactory,
	cache ports.FileCache,
) *App {
	return &App{
		logger:   log,
		registry: registry,
		locator:  locator,
		consoles: consoles,
		stores:   stores,
		plans:    plans,
		watchers: watchers,
		cache:    cache,
		lookPath: exec.LookPath,
	}
}

// WithLookPath replaces the PATH lookup used for bare console names.
// This is primarily used for testing.
func (a *App) WithLookPath(fn func(file string) (string, error)) *App {
	a.lookPath = fn
	return a
}

// Options selects the installation and console of a session.
type Options struct {
	// Root is an explicit installation root. It wins over the registry.
	Root string
	// Console overrides the control executable. A bare name is looked up in PATH.
	Console string
	// Install is the registry index used when Root is empty.
	Install int
	// Encoding is the code page of ldconsole output.
	Encoding string
}

func (o Options) encoding() string {
	if o.Encoding == "" {
		return domain.DefaultEncoding
	}
	return o.Encoding
}

// SetLogJSON switches the logger to JSON records when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(enable)
	}
}

// Operations returns the operation table in lexical order.
func (a *App) Operations() []domain.Operation {
	names := domain.OperationNames()
	ops := make([]domain.Operation, 0, len(names))
	for _, name := range names {
		ops = append(ops, domain.Operations[name])
	}
	return ops
}

// Installations returns the registered installation roots.
func (a *App) Installations() ([]string, error) {
	return a.registry.Paths()
}

// AddInstallation locates the installation containing path, validates it by probing its
// console and registers it. It returns the root and whether the registry changed.
func (a *App) AddInstallation(ctx context.Context, path string, opts Options) (string, bool, error) {
	root, err := a.locator.Locate(path)
	if err != nil {
		return "", false, err
	}

	consolePath, err := a.resolveConsole(opts.Console)
	if err != nil {
		return "", false, err
	}
	if consolePath == "" {
		consolePath = domain.NewInstallation(root).Console
		if found, ok := install.FindConsole(root); ok {
			consolePath = found
		}
	}

	console, err := a.consoles.NewConsole(consolePath, opts.encoding())
	if err != nil {
		return "", false, err
	}
	if err := a.locator.Validate(ctx, root, console); err != nil {
		return "", false, err
	}

	added, err := a.registry.Add(root)
	if err != nil {
		return "", false, err
	}
	if added {
		a.logger.Info("registered installation " + root)
	}
	return root, added, nil
}

// Open resolves the installation and console selected by opts and returns a session over them.
func (a *App) Open(opts Options) (*Session, error) {
	inst, err := a.resolveInstallation(opts)
	if err != nil {
		return nil, err
	}

	console, err := a.consoles.NewConsole(inst.Console, opts.encoding())
	if err != nil {
		return nil, err
	}

	return &Session{
		app:          a,
		Installation: inst,
		Console:      console,
		Stores:       a.stores.Open(inst),
	}, nil
}

// resolveInstallation applies the root resolution order: an explicit root, then the registry
// entry at opts.Install, then the directory of an explicit console.
func (a *App) resolveInstallation(opts Options) (domain.Installation, error) {
	consolePath, err := a.resolveConsole(opts.Console)
	if err != nil {
		return domain.Installation{}, err
	}

	root := opts.Root
	if root == "" {
		root, err = a.registeredRoot(opts.Install, consolePath)
		if err != nil {
			return domain.Installation{}, err
		}
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return domain.Installation{}, zerr.With(zerr.Wrap(domain.ErrInvalidInstallation, err.Error()), "root", root)
	}

	inst := domain.NewInstallation(root)
	switch {
	case consolePath != "":
		inst = inst.WithConsole(consolePath)
	default:
		if found, ok := install.FindConsole(root); ok {
			inst = inst.WithConsole(found)
		}
	}
	return inst, nil
}

func (a *App) registeredRoot(index int, consolePath string) (string, error) {
	paths, err := a.registry.Paths()
	if err != nil {
		return "", err
	}
	if len(paths) == 0 && consolePath != "" {
		return filepath.Dir(consolePath), nil
	}
	return a.registry.Path(index)
}

// resolveConsole turns a console override into an absolute executable path. A bare name is
// looked up in PATH and a directory is searched for a known executable name.
func (a *App) resolveConsole(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	if filepath.Base(raw) == raw {
		found, err := a.lookPath(raw)
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrConsoleUnavailable, "console not found in PATH"), "console", raw)
		}
		raw = found
	}

	path, err := filepath.Abs(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConsoleUnavailable, err.Error()), "console", raw)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConsoleUnavailable, "console does not exist"), "console", path)
	}
	if info.IsDir() {
		found, ok := install.FindConsole(path)
		if !ok {
			return "", zerr.With(zerr.Wrap(domain.ErrConsoleUnavailable, "no console executable in directory"), "console", path)
		}
		return found, nil
	}
	return path, nil
}
