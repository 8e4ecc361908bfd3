package configfile

import (
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
)

// Factory opens the stores of an installation over one shared cache.
type Factory struct {
	cache ports.FileCache
}

var _ ports.ConfigStoreFactory = (*Factory)(nil)

// NewFactory creates a Factory.
func NewFactory(cache ports.FileCache) *Factory {
	return &Factory{cache: cache}
}

// Open implements ports.ConfigStoreFactory.
func (f *Factory) Open(inst domain.Installation) ports.ConfigStores {
	return ports.ConfigStores{
		Instances: NewInstanceStore(inst, f.cache),
		Global:    NewGlobalStore(inst, f.cache),
		Keymaps:   NewKeymapStore(inst, f.cache),
		Records:   NewRecordStore(inst, f.cache),
	}
}
