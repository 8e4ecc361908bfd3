package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ldx/internal/core/domain"
)

func TestLookupOperation(t *testing.T) {
	t.Parallel()

	op, err := domain.LookupOperation("launch")
	require.NoError(t, err)
	assert.Equal(t, domain.TargetRequired, op.Targeting)
	assert.True(t, op.Batchable)

	_, err = domain.LookupOperation("explode")
	require.ErrorIs(t, err, domain.ErrUnknownOperation)
	assert.True(t, domain.IsUsageError(err))
}

func TestOperationNames_Sorted(t *testing.T) {
	t.Parallel()

	names := domain.OperationNames()
	require.Len(t, names, len(domain.Operations))
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "list2")
	assert.Contains(t, names, "operaterecord")
}

func TestOperation_BuildArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		op      string
		req     domain.Request
		want    []string
		wantErr error
	}{
		{
			name: "NoTarget",
			op:   "quitall",
			want: []string{"quitall"},
		},
		{
			name: "ByIndex",
			op:   "launch",
			req:  domain.Request{Target: domain.ByIndex(3)},
			want: []string{"launch", "--index", "3"},
		},
		{
			name: "ByName",
			op:   "quit",
			req:  domain.Request{Target: domain.ByName("farm")},
			want: []string{"quit", "--name", "farm"},
		},
		{
			name: "ParamsInSchemaOrder",
			op:   "pull",
			req: domain.Request{
				Target: domain.ByIndex(0),
				Params: map[string]string{"local": "/tmp/a", "remote": "/sdcard/a"},
			},
			want: []string{"pull", "--index", "0", "--remote", "/sdcard/a", "--local", "/tmp/a"},
		},
		{
			name: "OptionalParamsSkipped",
			op:   "modify",
			req: domain.Request{
				Target: domain.ByIndex(1),
				Params: map[string]string{"cpu": "2", "memory": ""},
			},
			want: []string{"modify", "--index", "1", "--cpu", "2"},
		},
		{
			name: "CustomFlag",
			op:   "locate",
			req:  domain.Request{Target: domain.ByIndex(0), Params: map[string]string{"lli": "30.1,120.2"}},
			want: []string{"locate", "--index", "0", "--LLI", "30.1,120.2"},
		},
		{
			name: "OptionalTargetOmitted",
			op:   "rock",
			want: []string{"rock"},
		},
		{
			name:    "AmbiguousTarget",
			op:      "launch",
			req:     domain.Request{Target: domain.Target{Name: "a", Index: new(int)}},
			wantErr: domain.ErrAmbiguousTarget,
		},
		{
			name:    "MissingTarget",
			op:      "launch",
			wantErr: domain.ErrMissingTarget,
		},
		{
			name:    "UnexpectedTarget",
			op:      "quitall",
			req:     domain.Request{Target: domain.ByIndex(0)},
			wantErr: domain.ErrUnexpectedTarget,
		},
		{
			name:    "NameOnIndexOnly",
			op:      "list3",
			req:     domain.Request{Target: domain.ByName("farm")},
			wantErr: domain.ErrUnexpectedTarget,
		},
		{
			name:    "UnknownParam",
			op:      "launch",
			req:     domain.Request{Target: domain.ByIndex(0), Params: map[string]string{"speed": "1"}},
			wantErr: domain.ErrUnknownParam,
		},
		{
			name:    "MissingParam",
			op:      "runapp",
			req:     domain.Request{Target: domain.ByIndex(0)},
			wantErr: domain.ErrMissingParam,
		},
		{
			name:    "OneOfMissing",
			op:      "installapp",
			req:     domain.Request{Target: domain.ByIndex(0)},
			wantErr: domain.ErrMissingParam,
		},
		{
			name: "OneOfPresent",
			op:   "installapp",
			req:  domain.Request{Target: domain.ByIndex(0), Params: map[string]string{"packagename": "com.a"}},
			want: []string{"installapp", "--index", "0", "--packagename", "com.a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			op, err := domain.LookupOperation(tt.op)
			require.NoError(t, err)

			got, err := op.BuildArgs(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, domain.IsUsageError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsUsageError(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.IsUsageError(domain.ErrNotBatchable))
	assert.True(t, domain.IsUsageError(domain.ErrInvalidTargetSpec))
	assert.False(t, domain.IsUsageError(domain.ErrCommandFailed))
	assert.False(t, domain.IsUsageError(errors.New("boom")))
	assert.False(t, domain.IsUsageError(nil))
}
