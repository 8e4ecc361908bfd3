package ports

import "go.trai.ch/ldx/internal/core/domain"

// InstanceConfigStore manages the per-instance config files of an installation.
//
//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks
type InstanceConfigStore interface {
	// List returns the indices of every instance config, sorted.
	List() ([]int, error)
	// Load reads the config of the instance at index.
	Load(index int) (*domain.InstanceConfig, error)
	// Save rewrites the config file.
	Save(cfg *domain.InstanceConfig) error
}

// GlobalConfigStore manages the installation-wide config file.
type GlobalConfigStore interface {
	Load() (*domain.GlobalConfig, error)
	Save(cfg *domain.GlobalConfig) error
}

// KeymapStore manages keyboard mappings and mapping settings profiles.
type KeymapStore interface {
	// List returns the names, without extension, of every file of kind in scope.
	List(scope domain.KeymapScope, kind domain.KeymapKind) ([]string, error)
	LoadMapping(scope domain.KeymapScope, name string) (*domain.KeyboardMapping, error)
	// SaveMapping always writes to the customize scope.
	SaveMapping(name string, mapping *domain.KeyboardMapping) error
	LoadProfile(scope domain.KeymapScope, name string) (*domain.KeymapProfile, error)
	// SaveProfile always writes to the customize scope.
	SaveProfile(name string, p *domain.KeymapProfile) error
}

// RecordStore manages macro recordings.
type RecordStore interface {
	List() ([]string, error)
	Load(name string) (*domain.Record, error)
	Save(name string, r *domain.Record) error
}

// ConfigStores groups the config managers of one installation.
type ConfigStores struct {
	Instances InstanceConfigStore
	Global    GlobalConfigStore
	Keymaps   KeymapStore
	Records   RecordStore
}

// ConfigStoreFactory opens the config managers of an installation.
type ConfigStoreFactory interface {
	Open(inst domain.Installation) ConfigStores
}
