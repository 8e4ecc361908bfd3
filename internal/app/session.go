package app

import (
	"context"
	"time"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/ldx/internal/engine/batch"
	"go.trai.ch/zerr"
)

// Session binds one installation to its console and config stores.
type Session struct {
	app *App

	Installation domain.Installation
	Console      ports.Console
	Stores       ports.ConfigStores
}

// List fetches list2 and keeps the instances filter accepts. A nil filter keeps all.
func (s *Session) List(ctx context.Context, filter func(domain.Instance) bool) ([]domain.Instance, error) {
	res, err := s.Console.Invoke(ctx, "list2", domain.Request{})
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return res.Instances, nil
	}
	out := make([]domain.Instance, 0, len(res.Instances))
	for _, inst := range res.Instances {
		if filter(inst) {
			out = append(out, inst)
		}
	}
	return out, nil
}

// Exec runs a single invocation.
func (s *Session) Exec(ctx context.Context, operation string, req domain.Request) (domain.Result, error) {
	return s.Console.Invoke(ctx, operation, req)
}

// Batch runs operation over the instances spec selects, waiting delay between invocations.
func (s *Session) Batch(
	ctx context.Context,
	operation string,
	spec batch.Spec,
	params map[string]string,
	delay time.Duration,
) ([]domain.Outcome, error) {
	return s.resolver(delay).Run(ctx, operation, spec, params)
}

// Plan loads the batch plan at path and runs it. A plan without targets selects every instance.
func (s *Session) Plan(ctx context.Context, path string) (*domain.BatchPlan, []domain.Outcome, error) {
	p, err := s.app.plans.Load(path)
	if err != nil {
		return nil, nil, err
	}

	spec := batch.All()
	if len(p.Targets) > 0 {
		spec = batch.Explicit(p.TargetList()...)
	}

	outcomes, err := s.resolver(p.Delay).RunFunc(ctx, p.Operation, spec, p.ParamsFor)
	if err != nil {
		return p, nil, zerr.With(err, "plan", path)
	}
	return p, outcomes, nil
}

func (s *Session) resolver(delay time.Duration) *batch.Resolver {
	return batch.NewResolver(s.Console, s.app.logger, batch.WithDelay(delay))
}

// InstanceIndices returns the indices of every instance config.
func (s *Session) InstanceIndices() ([]int, error) {
	return s.Stores.Instances.List()
}

// Instance loads the config of the instance at index.
func (s *Session) Instance(index int) (*domain.InstanceConfig, error) {
	return s.Stores.Instances.Load(index)
}

// SetInstance applies key=value assignments to the config of the instance at index and
// returns the resulting changes. Nothing is written when an assignment is malformed.
func (s *Session) SetInstance(index int, assignments []string) ([]domain.SettingChange, error) {
	values, err := parseAssignments(assignments)
	if err != nil {
		return nil, err
	}

	cfg, err := s.Stores.Instances.Load(index)
	if err != nil {
		return nil, err
	}

	next := &domain.InstanceConfig{Index: cfg.Index, Path: cfg.Path, Settings: apply(cfg.Settings, values)}
	if err := s.Stores.Instances.Save(next); err != nil {
		return nil, err
	}
	return domain.Diff(cfg.Settings, next.Settings), nil
}

// Global loads the installation-wide config.
func (s *Session) Global() (*domain.GlobalConfig, error) {
	return s.Stores.Global.Load()
}

// SetGlobal applies key=value assignments to the global config and returns the resulting changes.
func (s *Session) SetGlobal(assignments []string) ([]domain.SettingChange, error) {
	values, err := parseAssignments(assignments)
	if err != nil {
		return nil, err
	}

	cfg, err := s.Stores.Global.Load()
	if err != nil {
		return nil, err
	}

	next := &domain.GlobalConfig{Path: cfg.Path, Settings: apply(cfg.Settings, values)}
	if err := s.Stores.Global.Save(next); err != nil {
		return nil, err
	}
	return domain.Diff(cfg.Settings, next.Settings), nil
}

type assignment struct {
	key   string
	value any
}

func parseAssignments(raw []string) ([]assignment, error) {
	if len(raw) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidSetting, "no assignments given")
	}
	out := make([]assignment, 0, len(raw))
	for _, r := range raw {
		key, value, err := domain.ParseAssignment(r)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{key: key, value: value})
	}
	return out, nil
}

// apply returns a copy of settings with values assigned. Cached documents are never mutated.
func apply(settings domain.Settings, values []assignment) domain.Settings {
	next := settings.Clone()
	for _, v := range values {
		next.Set(v.key, v.value)
	}
	return next
}

// Keymaps lists the mapping or profile names of a scope.
func (s *Session) Keymaps(scope domain.KeymapScope, kind domain.KeymapKind) ([]string, error) {
	return s.Stores.Keymaps.List(scope, kind)
}

// Keymap loads a keyboard mapping.
func (s *Session) Keymap(scope domain.KeymapScope, name string) (*domain.KeyboardMapping, error) {
	return s.Stores.Keymaps.LoadMapping(scope, name)
}

// Profile loads a mapping settings profile.
func (s *Session) Profile(scope domain.KeymapScope, name string) (*domain.KeymapProfile, error) {
	return s.Stores.Keymaps.LoadProfile(scope, name)
}

// Records lists the macro recordings.
func (s *Session) Records() ([]string, error) {
	return s.Stores.Records.List()
}

// Record loads a macro recording.
func (s *Session) Record(name string) (*domain.Record, error) {
	return s.Stores.Records.Load(name)
}
