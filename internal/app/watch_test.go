package app_test

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/ldx/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func fps(v string) domain.Settings {
	return domain.Settings{"basicSettings": map[string]any{"fps": json.Number(v)}}
}

func TestSession_Watch(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	w := mocks.NewMockWatcher(gomock.NewController(t))
	inst := s.session.Installation
	leidian0, global := inst.InstanceConfigPath(0), inst.GlobalConfigPath()

	events := []ports.WatchEvent{
		{Path: leidian0, Operation: ports.OpWrite},
		{Path: inst.ConfigDir() + "/notes.txt", Operation: ports.OpWrite},
		{Path: leidian0, Operation: ports.OpWrite},
		{Path: global, Operation: ports.OpWrite},
		{Path: leidian0, Operation: ports.OpRemove},
	}

	s.watchers.EXPECT().NewWatcher().Return(w, nil)
	w.EXPECT().Start(gomock.Any(), inst.ConfigDir()).Return(nil)
	w.EXPECT().Events().Return(slices.Values(events))
	w.EXPECT().Stop().Return(nil)

	// Snapshot, then one reload per relevant write.
	gomock.InOrder(
		s.global.EXPECT().Load().Return(&domain.GlobalConfig{Settings: domain.Settings{"reduceAudio": false}}, nil),
		s.instances.EXPECT().List().Return([]int{0}, nil),
		s.instances.EXPECT().Load(0).Return(&domain.InstanceConfig{Settings: fps("60")}, nil),
		s.instances.EXPECT().Load(0).Return(&domain.InstanceConfig{Settings: fps("120")}, nil),
		s.instances.EXPECT().Load(0).Return(&domain.InstanceConfig{Settings: fps("120")}, nil),
		s.global.EXPECT().Load().Return(&domain.GlobalConfig{Settings: domain.Settings{"reduceAudio": true}}, nil),
	)
	s.cache.EXPECT().Invalidate(leidian0).Times(3)
	s.cache.EXPECT().Invalidate(global)

	var got []domain.ConfigChange
	err := s.session.Watch(t.Context(), func(c domain.ConfigChange) error {
		got = append(got, c)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.ConfigChange{
		{
			Path:    leidian0,
			Changes: []domain.SettingChange{{Key: "basicSettings.fps", Old: json.Number("60"), New: json.Number("120")}},
		},
		{
			Path:    global,
			Global:  true,
			Changes: []domain.SettingChange{{Key: "reduceAudio", Old: false, New: true}},
		},
		{Path: leidian0, Removed: true},
	}, got)
}

func TestSession_WatchSkipsUnreadableFiles(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	w := mocks.NewMockWatcher(gomock.NewController(t))
	path := s.session.Installation.InstanceConfigPath(4)

	s.watchers.EXPECT().NewWatcher().Return(w, nil)
	w.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	w.EXPECT().Events().Return(slices.Values([]ports.WatchEvent{{Path: path, Operation: ports.OpCreate}}))
	w.EXPECT().Stop().Return(nil)

	s.global.EXPECT().Load().Return(nil, domain.ErrConfigReadFailed)
	s.instances.EXPECT().List().Return(nil, nil)
	s.cache.EXPECT().Invalidate(path)
	s.instances.EXPECT().Load(4).Return(nil, domain.ErrConfigParseFailed)
	s.logger.EXPECT().Warn(gomock.Any())

	err := s.session.Watch(t.Context(), func(domain.ConfigChange) error {
		t.Fatal("no change expected")
		return nil
	})
	require.NoError(t, err)
}

func TestSession_WatchEmitErrorStops(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	w := mocks.NewMockWatcher(gomock.NewController(t))
	path := s.session.Installation.InstanceConfigPath(0)
	boom := errors.New("stdout closed")

	s.watchers.EXPECT().NewWatcher().Return(w, nil)
	w.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	w.EXPECT().Events().Return(slices.Values([]ports.WatchEvent{
		{Path: path, Operation: ports.OpWrite},
		{Path: path, Operation: ports.OpRemove},
	}))
	w.EXPECT().Stop().Return(nil)

	s.global.EXPECT().Load().Return(nil, domain.ErrConfigReadFailed)
	s.instances.EXPECT().List().Return(nil, nil)
	s.cache.EXPECT().Invalidate(path)
	s.instances.EXPECT().Load(0).Return(&domain.InstanceConfig{Settings: fps("30")}, nil)

	calls := 0
	err := s.session.Watch(t.Context(), func(domain.ConfigChange) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestSession_WatchStartFails(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	w := mocks.NewMockWatcher(gomock.NewController(t))

	s.watchers.EXPECT().NewWatcher().Return(w, nil)
	s.global.EXPECT().Load().Return(nil, domain.ErrConfigReadFailed)
	s.instances.EXPECT().List().Return(nil, nil)
	w.EXPECT().Start(gomock.Any(), gomock.Any()).Return(domain.ErrWatchFailed)
	w.EXPECT().Stop().Return(nil)

	err := s.session.Watch(t.Context(), func(domain.ConfigChange) error { return nil })
	require.ErrorIs(t, err, domain.ErrWatchFailed)
}
