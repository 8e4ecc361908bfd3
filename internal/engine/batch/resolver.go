// Package batch repeats single-instance operations over a resolved set of instances.
package batch

import (
	"context"
	"maps"
	"time"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Spec selects the instances of a batch. Exactly one of Targets and Filter must be set.
type Spec struct {
	// Targets is an explicit, ordered list of names or indices.
	Targets []domain.Target
	// Filter selects matching instances in list2 order.
	Filter func(domain.Instance) bool
}

// All selects every instance.
func All() Spec {
	return Spec{Filter: func(domain.Instance) bool { return true }}
}

// Explicit selects the given targets in order.
func Explicit(targets ...domain.Target) Spec {
	if targets == nil {
		targets = []domain.Target{}
	}
	return Spec{Targets: targets}
}

func (s Spec) validate() error {
	if (s.Targets == nil) == (s.Filter == nil) {
		return zerr.Wrap(domain.ErrInvalidTargetSpec, "invalid batch selection")
	}
	return nil
}

// Func is a custom single-instance action run by Each. The console is the resolver's own.
type Func func(ctx context.Context, console ports.Console, inst domain.Instance) (domain.Result, error)

// SleepFunc waits for d or until ctx is done. The resolver ignores its error and consults ctx.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option configures a Resolver.
type Option func(*Resolver)

// WithDelay waits d between two consecutive invocations.
func WithDelay(d time.Duration) Option {
	return func(r *Resolver) {
		r.delay = max(d, 0)
	}
}

// WithSleep replaces the wait between invocations.
func WithSleep(fn SleepFunc) Option {
	return func(r *Resolver) {
		r.sleep = fn
	}
}

// Resolver expands a Spec into instances and runs one invocation per instance, in order.
type Resolver struct {
	console ports.Console
	logger  ports.Logger
	delay   time.Duration
	sleep   SleepFunc
}

// NewResolver creates a Resolver over console. logger may be nil.
func NewResolver(console ports.Console, logger ports.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		console: console,
		logger:  logger,
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Resolve fetches a fresh list2 and returns the instances spec selects.
// Explicit targets are deduplicated by instance, keeping the first occurrence.
func (r *Resolver) Resolve(ctx context.Context, spec Spec) ([]domain.Instance, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	res, err := r.console.Invoke(ctx, "list2", domain.Request{})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list instances")
	}

	if spec.Filter != nil {
		var out []domain.Instance
		for _, inst := range res.Instances {
			if spec.Filter(inst) {
				out = append(out, inst)
			}
		}
		return out, nil
	}

	seen := make(map[int]struct{}, len(spec.Targets))
	out := make([]domain.Instance, 0, len(spec.Targets))
	for _, t := range spec.Targets {
		inst, err := find(res.Instances, t)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[inst.Index]; dup {
			continue
		}
		seen[inst.Index] = struct{}{}
		out = append(out, inst)
	}
	return out, nil
}

func find(instances []domain.Instance, t domain.Target) (domain.Instance, error) {
	if t.Ambiguous() || t.IsZero() {
		return domain.Instance{}, zerr.With(zerr.Wrap(domain.ErrAmbiguousTarget, "invalid batch target"), "target", t.String())
	}
	for _, inst := range instances {
		if t.Matches(inst) {
			return inst, nil
		}
	}
	return domain.Instance{}, zerr.With(zerr.Wrap(domain.ErrInstanceNotFound, "batch target matches no instance"), "target", t.String())
}

// Run invokes operation once per selected instance with the same params. The operation
// must be batchable and params must fit its schema; both are checked before list2 is fetched.
func (r *Resolver) Run(ctx context.Context, operation string, spec Spec, params map[string]string) ([]domain.Outcome, error) {
	op, err := prepare(operation, spec)
	if err != nil {
		return nil, err
	}
	if err := checkParams(op, params); err != nil {
		return nil, err
	}
	return r.run(ctx, op, spec, func(domain.Instance) map[string]string { return params })
}

// RunFunc invokes operation once per selected instance with the params paramsFor returns.
// Every request is validated before the first invocation.
func (r *Resolver) RunFunc(
	ctx context.Context,
	operation string,
	spec Spec,
	paramsFor func(domain.Instance) map[string]string,
) ([]domain.Outcome, error) {
	op, err := prepare(operation, spec)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, op, spec, paramsFor)
}

// prepare looks the operation up and rejects non-batchable operations and malformed specs.
func prepare(operation string, spec Spec) (domain.Operation, error) {
	op, err := domain.LookupOperation(operation)
	if err != nil {
		return domain.Operation{}, err
	}
	if !op.Batchable {
		return domain.Operation{}, zerr.With(zerr.Wrap(domain.ErrNotBatchable, "invalid batch invocation"), "operation", op.Name)
	}
	if err := spec.validate(); err != nil {
		return domain.Operation{}, zerr.With(err, "operation", op.Name)
	}
	return op, nil
}

func (r *Resolver) run(
	ctx context.Context,
	op domain.Operation,
	spec Spec,
	paramsFor func(domain.Instance) map[string]string,
) ([]domain.Outcome, error) {
	instances, err := r.Resolve(ctx, spec)
	if err != nil {
		return nil, err
	}

	requests := make([]domain.Request, len(instances))
	for i, inst := range instances {
		req := domain.Request{Target: domain.ByIndex(inst.Index), Params: maps.Clone(paramsFor(inst))}
		if _, err := op.BuildArgs(req); err != nil {
			return nil, zerr.With(err, "target", instanceLabel(inst))
		}
		requests[i] = req
	}

	return r.loop(ctx, instances, func(ctx context.Context, i int, _ domain.Instance) (domain.Result, error) {
		return r.console.Invoke(ctx, op.Name, requests[i])
	})
}

// checkParams validates params against the operation schema. The schema does not depend on
// the instance, so a placeholder target stands in.
func checkParams(op domain.Operation, params map[string]string) error {
	_, err := op.BuildArgs(domain.Request{Target: domain.ByIndex(0), Params: params})
	return err
}

// Each calls fn once per selected instance with the resolver's console.
func (r *Resolver) Each(ctx context.Context, spec Spec, fn Func) ([]domain.Outcome, error) {
	instances, err := r.Resolve(ctx, spec)
	if err != nil {
		return nil, err
	}
	return r.loop(ctx, instances, func(ctx context.Context, _ int, inst domain.Instance) (domain.Result, error) {
		return fn(ctx, r.console, inst)
	})
}

// loop runs call for each instance in order, waiting the configured delay in between.
// Failures are recorded and never stop the loop. Once ctx is done, the remaining
// instances record the context error without being invoked.
func (r *Resolver) loop(
	ctx context.Context,
	instances []domain.Instance,
	call func(ctx context.Context, i int, inst domain.Instance) (domain.Result, error),
) ([]domain.Outcome, error) {
	outcomes := make([]domain.Outcome, len(instances))
	for i, inst := range instances {
		outcomes[i].Instance = inst

		if i > 0 && r.delay > 0 && ctx.Err() == nil {
			// A failed wait only matters when ctx is done, which the check below records.
			_ = r.sleep(ctx, r.delay)
		}
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		res, err := call(ctx, i, inst)
		if err != nil {
			outcomes[i].Err = zerr.With(err, "target", instanceLabel(inst))
			continue
		}
		outcomes[i].Result = res
	}

	if err := ctx.Err(); err != nil && r.logger != nil && len(instances) > 0 {
		r.logger.Warn("batch interrupted: " + err.Error())
	}
	return outcomes, nil
}

func instanceLabel(inst domain.Instance) string {
	return domain.ByIndex(inst.Index).String()
}
