package userconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ldx/internal/adapters/userconfig"
	"go.trai.ch/ldx/internal/core/domain"
)

func TestRegistry_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ldx", "ld", "config.json")
	reg, err := userconfig.Open(path)
	require.NoError(t, err)

	paths, err := reg.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)

	_, err = reg.Path(0)
	require.ErrorIs(t, err, domain.ErrNoInstallations)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "file is created on first write only")
}

func TestRegistry_AddDeduplicatesAndPersists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".ldx", "ld", "config.json")
	first := filepath.Join(dir, "LDPlayer9")
	second := filepath.Join(dir, "LDPlayer4")

	reg, err := userconfig.Open(path)
	require.NoError(t, err)

	changed, err := reg.Add(first)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = reg.Add(second)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = reg.Add(first)
	require.NoError(t, err)
	assert.False(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{\n    \"path\": [")

	reopened, err := userconfig.Open(path)
	require.NoError(t, err)
	paths, err := reopened.Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, paths)

	got, err := reopened.Path(1)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = reopened.Path(2)
	require.ErrorIs(t, err, domain.ErrInstallIndexOutOfRange)
	_, err = reopened.Path(-1)
	require.ErrorIs(t, err, domain.ErrInstallIndexOutOfRange)
}

func TestRegistry_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"path": "not-a-list"}`), 0o600))

	_, err := userconfig.Open(path)
	require.ErrorIs(t, err, domain.ErrUserConfigParseFailed)
}

func TestRegistry_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	reg, err := userconfig.Open(path)
	require.NoError(t, err)
	paths, err := reg.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestRegistry_WriteFailureRollsBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	reg, err := userconfig.Open(filepath.Join(blocker, "config.json"))
	require.NoError(t, err)

	_, err = reg.Add(filepath.Join(dir, "LDPlayer9"))
	require.ErrorIs(t, err, domain.ErrUserConfigWriteFailed)

	paths, err := reg.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}
