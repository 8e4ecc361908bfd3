package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/ldx/internal/core/ports/mocks"
	"go.trai.ch/ldx/internal/engine/batch"
	"go.uber.org/mock/gomock"
)

func fleet() []domain.Instance {
	return []domain.Instance{
		{Index: 0, Name: "main", AndroidStarted: true},
		{Index: 1, Name: "farm-1"},
		{Index: 2, Name: "farm-2", AndroidStarted: true},
		{Index: 3, Name: "farm-3"},
	}
}

func expectList(console *mocks.MockConsole) *gomock.Call {
	return console.EXPECT().
		Invoke(gomock.Any(), "list2", domain.Request{}).
		Return(domain.Result{Operation: "list2", Instances: fleet()}, nil)
}

func byIndex(index int, params map[string]string) domain.Request {
	return domain.Request{Target: domain.ByIndex(index), Params: params}
}

func indices(outcomes []domain.Outcome) []int {
	out := make([]int, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.Instance.Index)
	}
	return out
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec batch.Spec
		want []int
	}{
		{
			name: "explicit order with duplicates removed",
			spec: batch.Explicit(domain.ByIndex(2), domain.ByIndex(0), domain.ByIndex(2), domain.ByIndex(1)),
			want: []int{2, 0, 1},
		},
		{
			name: "name and index of the same instance",
			spec: batch.Explicit(domain.ByName("farm-2"), domain.ByIndex(3), domain.ByIndex(2)),
			want: []int{2, 3},
		},
		{
			name: "predicate keeps list order",
			spec: batch.Spec{Filter: domain.Instance.Running},
			want: []int{0, 2},
		},
		{
			name: "all",
			spec: batch.All(),
			want: []int{0, 1, 2, 3},
		},
		{
			name: "empty explicit list",
			spec: batch.Explicit(),
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			console := mocks.NewMockConsole(ctrl)
			expectList(console)

			got, err := batch.NewResolver(console, nil).Resolve(t.Context(), tt.spec)
			require.NoError(t, err)

			gotIdx := make([]int, 0, len(got))
			for _, inst := range got {
				gotIdx = append(gotIdx, inst.Index)
			}
			assert.Equal(t, tt.want, gotIdx)
		})
	}
}

func TestResolver_ResolveErrors(t *testing.T) {
	t.Parallel()

	t.Run("both list and predicate", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		console := mocks.NewMockConsole(ctrl)

		spec := batch.Spec{Targets: []domain.Target{domain.ByIndex(0)}, Filter: domain.Instance.Running}
		_, err := batch.NewResolver(console, nil).Resolve(t.Context(), spec)
		require.ErrorIs(t, err, domain.ErrInvalidTargetSpec)
		assert.True(t, domain.IsUsageError(err))
	})

	t.Run("neither list nor predicate", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		console := mocks.NewMockConsole(ctrl)

		_, err := batch.NewResolver(console, nil).Resolve(t.Context(), batch.Spec{})
		require.ErrorIs(t, err, domain.ErrInvalidTargetSpec)
	})

	t.Run("unknown explicit target", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		console := mocks.NewMockConsole(ctrl)
		expectList(console)

		_, err := batch.NewResolver(console, nil).Resolve(t.Context(), batch.Explicit(domain.ByIndex(0), domain.ByName("ghost")))
		require.ErrorIs(t, err, domain.ErrInstanceNotFound)
	})

	t.Run("list2 failure", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		console := mocks.NewMockConsole(ctrl)
		console.EXPECT().Invoke(gomock.Any(), "list2", gomock.Any()).Return(domain.Result{}, domain.ErrConsoleUnavailable)

		_, err := batch.NewResolver(console, nil).Resolve(t.Context(), batch.All())
		require.ErrorIs(t, err, domain.ErrConsoleUnavailable)
	})
}

func TestResolver_RunInvokesEachTargetInOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	params := map[string]string{"packagename": "com.example.game"}

	gomock.InOrder(
		expectList(console),
		console.EXPECT().Invoke(gomock.Any(), "runapp", byIndex(2, params)).Return(domain.Result{Operation: "runapp"}, nil),
		console.EXPECT().Invoke(gomock.Any(), "runapp", byIndex(0, params)).Return(domain.Result{Operation: "runapp"}, nil),
		console.EXPECT().Invoke(gomock.Any(), "runapp", byIndex(1, params)).Return(domain.Result{Operation: "runapp"}, nil),
	)

	spec := batch.Explicit(domain.ByIndex(2), domain.ByIndex(0), domain.ByIndex(2), domain.ByIndex(1))
	outcomes, err := batch.NewResolver(console, nil).Run(t.Context(), "runapp", spec, params)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, indices(outcomes))
	assert.Zero(t, domain.CountFailed(outcomes))
}

func TestResolver_RunFailuresDoNotAbort(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	boom := errors.New("exit status 1")

	expectList(console)
	console.EXPECT().Invoke(gomock.Any(), "launch", byIndex(0, nil)).Return(domain.Result{}, boom)
	console.EXPECT().Invoke(gomock.Any(), "launch", byIndex(1, nil)).Return(domain.Result{Operation: "launch"}, nil)
	console.EXPECT().Invoke(gomock.Any(), "launch", byIndex(2, nil)).Return(domain.Result{}, boom)
	console.EXPECT().Invoke(gomock.Any(), "launch", byIndex(3, nil)).Return(domain.Result{Operation: "launch"}, nil)

	outcomes, err := batch.NewResolver(console, nil).Run(t.Context(), "launch", batch.All(), nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.ErrorIs(t, outcomes[0].Err, boom)
	assert.NoError(t, outcomes[1].Err)
	assert.ErrorIs(t, outcomes[2].Err, boom)
	assert.NoError(t, outcomes[3].Err)
	assert.Equal(t, 2, domain.CountFailed(outcomes))
}

func TestResolver_RunUsageErrorsInvokeNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		operation string
		spec      batch.Spec
		params    map[string]string
		wantErr   error
	}{
		{name: "not batchable", operation: "remove", spec: batch.All(), wantErr: domain.ErrNotBatchable},
		{name: "not batchable even with a bad spec", operation: "list2", spec: batch.Spec{}, wantErr: domain.ErrNotBatchable},
		{name: "unknown operation", operation: "teleport", spec: batch.All(), wantErr: domain.ErrUnknownOperation},
		{name: "invalid spec", operation: "quit", spec: batch.Spec{}, wantErr: domain.ErrInvalidTargetSpec},
		{name: "missing param", operation: "runapp", spec: batch.All(), wantErr: domain.ErrMissingParam},
		{
			name: "unknown param", operation: "quit", spec: batch.All(),
			params: map[string]string{"force": "1"}, wantErr: domain.ErrUnknownParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			// No expectations: any invocation, list2 included, fails the test.
			console := mocks.NewMockConsole(ctrl)

			outcomes, err := batch.NewResolver(console, nil).Run(t.Context(), tt.operation, tt.spec, tt.params)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsUsageError(err))
			assert.Nil(t, outcomes)
		})
	}
}

func TestResolver_RunEmptySet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	expectList(console)

	none := func(domain.Instance) bool { return false }
	outcomes, err := batch.NewResolver(console, nil).Run(t.Context(), "quit", batch.Spec{Filter: none}, nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestResolver_DelayBetweenInvocations(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	expectList(console)
	console.EXPECT().Invoke(gomock.Any(), "reboot", gomock.Any()).Return(domain.Result{}, nil).Times(4)

	var slept []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	r := batch.NewResolver(console, nil, batch.WithDelay(3*time.Second), batch.WithSleep(sleep))
	_, err := r.Run(t.Context(), "reboot", batch.All(), nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second, 3 * time.Second}, slept)
}

func TestResolver_FailedSleepStillInvokesEveryTarget(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	expectList(console)
	console.EXPECT().Invoke(gomock.Any(), "reboot", gomock.Any()).Return(domain.Result{}, nil).Times(3)

	sleep := func(context.Context, time.Duration) error { return errors.New("clock broke") }

	r := batch.NewResolver(console, nil, batch.WithDelay(time.Second), batch.WithSleep(sleep))
	outcomes, err := r.Run(t.Context(), "reboot", batch.Explicit(domain.ByIndex(0), domain.ByIndex(1), domain.ByIndex(2)), nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.NoError(t, o.Err, "instance %d", o.Instance.Index)
	}
}

func TestResolver_NoDelayByDefault(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	expectList(console)
	console.EXPECT().Invoke(gomock.Any(), "quit", gomock.Any()).Return(domain.Result{}, nil).Times(4)

	calls := 0
	r := batch.NewResolver(console, nil, batch.WithSleep(func(context.Context, time.Duration) error {
		calls++
		return nil
	}))
	_, err := r.Run(t.Context(), "quit", batch.All(), nil)
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestResolver_CancellationSkipsRemaining(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	log := mocks.NewMockLogger(ctrl)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	expectList(console)
	console.EXPECT().Invoke(gomock.Any(), "quit", byIndex(0, nil)).Return(domain.Result{}, nil)
	console.EXPECT().Invoke(gomock.Any(), "quit", byIndex(1, nil)).DoAndReturn(
		func(context.Context, string, domain.Request) (domain.Result, error) {
			cancel()
			return domain.Result{}, context.Canceled
		})
	log.EXPECT().Warn("batch interrupted: context canceled")

	outcomes, err := batch.NewResolver(console, log).Run(ctx, "quit", batch.All(), nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)
	assert.NoError(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[1].Err, context.Canceled)
	assert.ErrorIs(t, outcomes[2].Err, context.Canceled)
	assert.ErrorIs(t, outcomes[3].Err, context.Canceled)
}

func TestResolver_RunFunc(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)

	expectList(console)
	console.EXPECT().Invoke(gomock.Any(), "runapp", byIndex(1, map[string]string{"packagename": "a"})).Return(domain.Result{}, nil)
	console.EXPECT().Invoke(gomock.Any(), "runapp", byIndex(3, map[string]string{"packagename": "b"})).Return(domain.Result{}, nil)

	paramsFor := func(inst domain.Instance) map[string]string {
		if inst.Index == 1 {
			return map[string]string{"packagename": "a"}
		}
		return map[string]string{"packagename": "b"}
	}
	spec := batch.Explicit(domain.ByName("farm-1"), domain.ByIndex(3))
	outcomes, err := batch.NewResolver(console, nil).RunFunc(t.Context(), "runapp", spec, paramsFor)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, indices(outcomes))
}

func TestResolver_RunFuncValidatesEveryTargetFirst(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	expectList(console)

	paramsFor := func(inst domain.Instance) map[string]string {
		if inst.Index == 3 {
			return nil
		}
		return map[string]string{"packagename": "a"}
	}
	_, err := batch.NewResolver(console, nil).RunFunc(t.Context(), "runapp", batch.All(), paramsFor)
	require.ErrorIs(t, err, domain.ErrMissingParam)
}

func TestResolver_Each(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	console := mocks.NewMockConsole(ctrl)
	expectList(console)

	var seen []string
	fn := func(_ context.Context, c ports.Console, inst domain.Instance) (domain.Result, error) {
		assert.Same(t, console, c)
		seen = append(seen, inst.Name)
		if inst.Index == 1 {
			return domain.Result{}, errors.New("no adb")
		}
		return domain.Result{Text: inst.Name}, nil
	}

	outcomes, err := batch.NewResolver(console, nil).Each(t.Context(), batch.All(), fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "farm-1", "farm-2", "farm-3"}, seen)
	assert.Equal(t, 1, domain.CountFailed(outcomes))
	assert.Equal(t, "farm-2", outcomes[2].Result.Text)
}
