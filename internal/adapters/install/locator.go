// Package install locates LDPlayer installation roots on disk.
package install

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator implements ports.InstallLocator.
type Locator struct{}

var _ ports.InstallLocator = (*Locator)(nil)

// NewLocator creates a Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate walks upward from path, a file or a directory, to the nearest directory that holds
// a console executable next to a vms directory.
func (l *Locator) Locate(path string) (string, error) {
	start, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrInstallationNotFound, err.Error()), "path", path)
	}
	info, err := os.Stat(start)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrInstallationNotFound, err.Error()), "path", path)
	}
	if !info.IsDir() {
		start = filepath.Dir(start)
	}

	currentDir := start
	for {
		if isRoot(currentDir) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrInstallationNotFound, "no installation root above path"), "path", path)
}

// Validate checks the directory layout under root and requires console to run cleanly.
func (l *Locator) Validate(ctx context.Context, root string, console ports.Console) error {
	inst := domain.NewInstallation(root)
	for _, dir := range []string{inst.VMsDir(), inst.ConfigDir()} {
		if !isDir(dir) {
			err := zerr.Wrap(domain.ErrInvalidInstallation, "missing directory")
			return zerr.With(zerr.With(err, "root", root), "path", dir)
		}
	}

	if console == nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidInstallation, "no console executable"), "root", root)
	}
	if _, err := os.Stat(console.Path()); err != nil {
		err := zerr.Wrap(domain.ErrInvalidInstallation, "missing console executable")
		return zerr.With(zerr.With(err, "root", root), "path", console.Path())
	}

	if err := console.Ping(ctx); err != nil {
		return zerr.With(zerr.Wrap(err, "console self-check failed"), "root", root)
	}
	return nil
}

// FindConsole returns the first console executable present directly under root.
func FindConsole(root string) (string, bool) {
	for _, name := range domain.ConsoleCandidates {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

func isRoot(dir string) bool {
	_, ok := FindConsole(dir)
	return ok && isDir(filepath.Join(dir, domain.VMsDirName))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
