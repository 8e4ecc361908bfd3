package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ldx/internal/app"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/ldx/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	logger   *mocks.MockLogger
	registry *mocks.MockInstallRegistry
	consoles *mocks.MockConsoleFactory
	stores   *mocks.MockConfigStoreFactory
	provider ComponentProvider
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &testDeps{
		logger:   mocks.NewMockLogger(ctrl),
		registry: mocks.NewMockInstallRegistry(ctrl),
		consoles: mocks.NewMockConsoleFactory(ctrl),
		stores:   mocks.NewMockConfigStoreFactory(ctrl),
	}
	application := app.New(
		d.logger,
		d.registry,
		mocks.NewMockInstallLocator(ctrl),
		d.consoles,
		d.stores,
		mocks.NewMockPlanLoader(ctrl),
		mocks.NewMockWatcherFactory(ctrl),
		mocks.NewMockFileCache(ctrl),
	)
	d.provider = func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(application, d.logger), func() {}, nil
	}
	return d
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	d := newTestDeps(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), d.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "ldx version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command errors are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	d := newTestDeps(t)
	d.registry.EXPECT().Paths().Return(nil, nil)
	d.registry.EXPECT().Path(0).Return("", domain.ErrNoInstallations)
	d.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrNoInstallations)
	})

	exitCode := run(context.Background(), []string{"list"}, new(bytes.Buffer), new(bytes.Buffer), d.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_BatchFailure verifies that a failed batch exits with 1 without logging the error again.
func TestRun_BatchFailure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	d := newTestDeps(t)
	console := mocks.NewMockConsole(gomock.NewController(t))

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConsoleFileName), []byte("MZ"), 0o755))

	d.consoles.EXPECT().NewConsole(gomock.Any(), gomock.Any()).Return(console, nil)
	d.stores.EXPECT().Open(gomock.Any()).Return(ports.ConfigStores{})
	console.EXPECT().Invoke(gomock.Any(), "list2", gomock.Any()).Return(domain.Result{
		Instances: []domain.Instance{{Index: 0, Name: "main"}, {Index: 1, Name: "farm-1"}},
	}, nil)
	console.EXPECT().Invoke(gomock.Any(), "reboot", domain.Request{Target: domain.ByIndex(0)}).Return(domain.Result{}, nil)
	console.EXPECT().Invoke(gomock.Any(), "reboot", domain.Request{Target: domain.ByIndex(1)}).
		Return(domain.Result{}, domain.ErrCommandFailed)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--root", root, "-o", "plain", "batch", "reboot", "--all"},
		stdout, new(bytes.Buffer), d.provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stdout.String(), "reboot: 1 succeeded, 1 failed")
}

// TestRun_Canceled verifies that a canceled context reaches the command.
func TestRun_Canceled(t *testing.T) {
	d := newTestDeps(t)
	console := mocks.NewMockConsole(gomock.NewController(t))

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConsoleFileName), []byte("MZ"), 0o755))

	d.consoles.EXPECT().NewConsole(gomock.Any(), gomock.Any()).Return(console, nil)
	d.stores.EXPECT().Open(gomock.Any()).Return(ports.ConfigStores{})
	console.EXPECT().Invoke(gomock.Any(), "list2", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ domain.Request) (domain.Result, error) {
			return domain.Result{}, ctx.Err()
		})
	d.logger.EXPECT().Error(gomock.Any())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"--root", root, "list"}, new(bytes.Buffer), new(bytes.Buffer), d.provider)
	assert.Equal(t, 1, exitCode)
}
