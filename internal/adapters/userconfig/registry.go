// Package userconfig persists the list of known LDPlayer installations.
package userconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"syscall"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.InstallRegistry on a JSON file.
type Registry struct {
	mu   sync.Mutex
	path string
	cfg  domain.UserConfig
}

var _ ports.InstallRegistry = (*Registry)(nil)

// Open reads the user config at path. A missing file is an empty registry; the file is
// created on the first Add, which fails if a parent of path is not a directory.
func Open(path string) (*Registry, error) {
	r := &Registry{path: path}
	data, err := os.ReadFile(path) //nolint:gosec // path is the per-user config location
	if err != nil {
		// ENOTDIR means a parent is a file, so the config cannot exist yet either.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return r, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrUserConfigReadFailed, err.Error()), "path", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return r, nil
	}
	if err := json.Unmarshal(data, &r.cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrUserConfigParseFailed, err.Error()), "path", path)
	}
	return r, nil
}

// Paths returns the registered roots in registration order.
func (r *Registry) Paths() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cfg.Paths), nil
}

// Add registers root and persists the list when it changed.
func (r *Registry) Add(root string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if !r.cfg.Add(root) {
		return false, nil
	}
	if err := r.write(); err != nil {
		r.cfg.Paths = r.cfg.Paths[:len(r.cfg.Paths)-1]
		return false, err
	}
	return true, nil
}

// Path returns the root at index i.
func (r *Registry) Path(i int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.cfg.Paths) {
		if len(r.cfg.Paths) == 0 {
			return "", domain.ErrNoInstallations
		}
		err := zerr.With(zerr.Wrap(domain.ErrInstallIndexOutOfRange, "no installation at index "+strconv.Itoa(i)), "index", i)
		return "", zerr.With(err, "registered", len(r.cfg.Paths))
	}
	return r.cfg.Paths[i], nil
}

func (r *Registry) write() error {
	data, err := json.MarshalIndent(r.cfg, "", "    ")
	if err != nil {
		return zerr.Wrap(domain.ErrUserConfigWriteFailed, err.Error())
	}
	if err := os.MkdirAll(filepath.Dir(r.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrUserConfigWriteFailed, err.Error()), "path", r.path)
	}
	if err := os.WriteFile(r.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrUserConfigWriteFailed, err.Error()), "path", r.path)
	}
	return nil
}
