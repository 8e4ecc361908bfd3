package configfile

import (
	"path/filepath"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// KeymapStore implements ports.KeymapStore over customizeConfigs and recommendConfigs.
type KeymapStore struct {
	inst  domain.Installation
	cache ports.FileCache
}

var _ ports.KeymapStore = (*KeymapStore)(nil)

// NewKeymapStore creates a KeymapStore for inst.
func NewKeymapStore(inst domain.Installation, cache ports.FileCache) *KeymapStore {
	return &KeymapStore{inst: inst, cache: cache}
}

func (s *KeymapStore) dir(scope domain.KeymapScope) string {
	if scope == domain.ScopeRecommended {
		return s.inst.RecommendConfigsDir()
	}
	return s.inst.CustomizeConfigsDir()
}

func (s *KeymapStore) path(scope domain.KeymapScope, kind domain.KeymapKind, name string) string {
	return filepath.Join(s.dir(scope), withExt(name, kind.Ext()))
}

// List returns the names of every file of kind in scope.
func (s *KeymapStore) List(scope domain.KeymapScope, kind domain.KeymapKind) ([]string, error) {
	return listNames(s.dir(scope), kind.Ext())
}

// LoadMapping reads a .kmp file.
func (s *KeymapStore) LoadMapping(scope domain.KeymapScope, name string) (*domain.KeyboardMapping, error) {
	path := s.path(scope, domain.KindMapping, name)
	m, err := get[domain.KeyboardMapping](s.cache, path, loadJSON(unmarshal[domain.KeyboardMapping]))
	if err != nil {
		return nil, zerr.With(err, "scope", scope.String())
	}
	m.Name = stem(path)
	return m, nil
}

// SaveMapping writes m to customizeConfigs.
func (s *KeymapStore) SaveMapping(name string, m *domain.KeyboardMapping) error {
	path := s.path(domain.ScopeCustomize, domain.KindMapping, name)
	m.Name = stem(path)
	return save(s.cache, path, m, m)
}

// LoadProfile reads a .smp file.
func (s *KeymapStore) LoadProfile(scope domain.KeymapScope, name string) (*domain.KeymapProfile, error) {
	path := s.path(scope, domain.KindProfile, name)
	p, err := get[domain.KeymapProfile](s.cache, path, loadJSON(unmarshal[domain.KeymapProfile]))
	if err != nil {
		return nil, zerr.With(err, "scope", scope.String())
	}
	p.Name = stem(path)
	return p, nil
}

// SaveProfile writes p to customizeConfigs.
func (s *KeymapStore) SaveProfile(name string, p *domain.KeymapProfile) error {
	path := s.path(domain.ScopeCustomize, domain.KindProfile, name)
	p.Name = stem(path)
	return save(s.cache, path, p, p)
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
