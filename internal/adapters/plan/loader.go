// Package plan reads YAML batch plans.
package plan

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.PlanLoader.
type Loader struct{}

var _ ports.PlanLoader = (*Loader)(nil)

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, decodes and validates the plan at path. Unknown keys are rejected.
func (l *Loader) Load(path string) (*domain.BatchPlan, error) {
	// #nosec G304 -- path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPlanReadFailed, err.Error()), "path", path)
	}

	p, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return p, nil
}

// Decode parses and validates a plan document.
func Decode(data []byte) (*domain.BatchPlan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p domain.BatchPlan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, zerr.Wrap(domain.ErrInvalidPlan, "plan is empty")
		}
		return nil, zerr.Wrap(domain.ErrPlanParseFailed, err.Error())
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
