package configfile

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// settingsDoc is the cached form of leidian<N>.config and leidians.config.
type settingsDoc struct {
	Settings domain.Settings
}

func decodeSettingsDoc(data []byte, v *settingsDoc) error {
	s, err := domain.DecodeSettings(data)
	if err != nil {
		return err
	}
	v.Settings = s
	return nil
}

// InstanceStore implements ports.InstanceConfigStore over vms/config.
type InstanceStore struct {
	inst  domain.Installation
	cache ports.FileCache
}

var _ ports.InstanceConfigStore = (*InstanceStore)(nil)

// NewInstanceStore creates an InstanceStore for inst.
func NewInstanceStore(inst domain.Installation, cache ports.FileCache) *InstanceStore {
	return &InstanceStore{inst: inst, cache: cache}
}

// List returns the indices of every leidian<N>.config, sorted.
func (s *InstanceStore) List() ([]int, error) {
	dir := s.inst.ConfigDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", dir)
	}

	var indices []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if idx, ok := domain.ParseInstanceConfigName(e.Name()); ok {
			indices = append(indices, idx)
		}
	}
	slices.Sort(indices)
	return indices, nil
}

// Load reads the config of the instance at index.
func (s *InstanceStore) Load(index int) (*domain.InstanceConfig, error) {
	path := s.inst.InstanceConfigPath(index)
	doc, err := get[settingsDoc](s.cache, path, loadJSON(decodeSettingsDoc))
	if err != nil {
		return nil, zerr.With(err, "index", index)
	}
	return &domain.InstanceConfig{Index: index, Path: path, Settings: doc.Settings}, nil
}

// Save rewrites the config file of cfg.Index. An empty cfg.Path is derived from the index.
func (s *InstanceStore) Save(cfg *domain.InstanceConfig) error {
	path := cfg.Path
	if path == "" {
		path = s.inst.InstanceConfigPath(cfg.Index)
		cfg.Path = path
	}
	if err := save(s.cache, path, cfg.Settings, &settingsDoc{Settings: cfg.Settings}); err != nil {
		return zerr.With(err, "index", cfg.Index)
	}
	return nil
}

// GlobalStore implements ports.GlobalConfigStore over vms/config/leidians.config.
type GlobalStore struct {
	inst  domain.Installation
	cache ports.FileCache
}

var _ ports.GlobalConfigStore = (*GlobalStore)(nil)

// NewGlobalStore creates a GlobalStore for inst.
func NewGlobalStore(inst domain.Installation, cache ports.FileCache) *GlobalStore {
	return &GlobalStore{inst: inst, cache: cache}
}

// Load reads leidians.config.
func (s *GlobalStore) Load() (*domain.GlobalConfig, error) {
	path := s.inst.GlobalConfigPath()
	doc, err := get[settingsDoc](s.cache, path, loadJSON(decodeSettingsDoc))
	if err != nil {
		return nil, err
	}
	return &domain.GlobalConfig{Path: path, Settings: doc.Settings}, nil
}

// Save rewrites leidians.config.
func (s *GlobalStore) Save(cfg *domain.GlobalConfig) error {
	if cfg.Path == "" {
		cfg.Path = s.inst.GlobalConfigPath()
	}
	return save(s.cache, cfg.Path, cfg.Settings, &settingsDoc{Settings: cfg.Settings})
}
