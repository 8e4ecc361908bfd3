package domain

import (
	"maps"
	"time"

	"go.trai.ch/zerr"
)

// BatchPlan runs one operation over explicit targets, each with its own parameters.
type BatchPlan struct {
	Operation string            `yaml:"operation"`
	Delay     time.Duration     `yaml:"delay"`
	Params    map[string]string `yaml:"params"`
	Targets   []PlanTarget      `yaml:"targets"`
}

// PlanTarget selects one instance of a plan by index or name.
type PlanTarget struct {
	Index  *int              `yaml:"index"`
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

// Target converts the plan entry into an instance target.
func (t PlanTarget) Target() Target {
	return Target{Name: t.Name, Index: t.Index}
}

// Validate checks the plan shape. Operation parameters are checked by the operation itself.
func (p *BatchPlan) Validate() error {
	if p.Operation == "" {
		return zerr.Wrap(ErrInvalidPlan, "plan has no operation")
	}
	if p.Delay < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidPlan, "plan delay is negative"), "delay", p.Delay.String())
	}
	for i, t := range p.Targets {
		target := t.Target()
		if target.Ambiguous() || target.IsZero() {
			return zerr.With(zerr.Wrap(ErrInvalidPlan, "plan target needs exactly one of index and name"), "target", i)
		}
	}
	return nil
}

// TargetList returns the targets in plan order.
func (p *BatchPlan) TargetList() []Target {
	out := make([]Target, 0, len(p.Targets))
	for _, t := range p.Targets {
		out = append(out, t.Target())
	}
	return out
}

// ParamsFor merges the plan defaults with the first plan entry that matches inst.
// Entry values override defaults.
func (p *BatchPlan) ParamsFor(inst Instance) map[string]string {
	out := maps.Clone(p.Params)
	if out == nil {
		out = map[string]string{}
	}
	for _, t := range p.Targets {
		if t.Target().Matches(inst) {
			maps.Copy(out, t.Params)
			break
		}
	}
	return out
}
