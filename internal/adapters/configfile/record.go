package configfile

import (
	"path/filepath"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
)

// RecordStore implements ports.RecordStore over operationRecords.
type RecordStore struct {
	inst  domain.Installation
	cache ports.FileCache
}

var _ ports.RecordStore = (*RecordStore)(nil)

// NewRecordStore creates a RecordStore for inst.
func NewRecordStore(inst domain.Installation, cache ports.FileCache) *RecordStore {
	return &RecordStore{inst: inst, cache: cache}
}

func (s *RecordStore) path(name string) string {
	return filepath.Join(s.inst.OperationRecordsDir(), withExt(name, domain.RecordExt))
}

// List returns the names of every recording.
func (s *RecordStore) List() ([]string, error) {
	return listNames(s.inst.OperationRecordsDir(), domain.RecordExt)
}

// Load reads a recording.
func (s *RecordStore) Load(name string) (*domain.Record, error) {
	path := s.path(name)
	r, err := get[domain.Record](s.cache, path, loadJSON(unmarshal[domain.Record]))
	if err != nil {
		return nil, err
	}
	r.Name = stem(path)
	return r, nil
}

// Save writes r to operationRecords.
func (s *RecordStore) Save(name string, r *domain.Record) error {
	path := s.path(name)
	r.Name = stem(path)
	return save(s.cache, path, r, r)
}
