// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/mock"
	"github.com/MKhiriev/blocklauncher/internal/workers"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sinkSpy struct {
	mu   sync.Mutex
	errs []error
}

func (s *sinkSpy) sink(_ string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *sinkSpy) all() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}

type settingsFixture struct {
	host     *configHost
	gateway  *mock.MockSettingsGateway
	detached *workers.Detached
	sink     *sinkSpy
	log      *callLog
	svc      *settingsReconciler
}

func newSettingsFixture(t *testing.T, local models.Config) *settingsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &settingsFixture{log: &callLog{}, sink: &sinkSpy{}}
	f.host = newConfigHost(t, f.log, local)
	f.gateway = mock.NewMockSettingsGateway(ctrl)
	f.detached = workers.NewDetached(f.sink.sink)
	f.svc = NewSettingsReconciler(f.host, f.gateway, f.detached, logger.Nop()).(*settingsReconciler)
	return f
}

func localConfig() models.Config {
	cfg := models.DefaultConfig()
	cfg.MinRAM = 1024
	cfg.MaxRAM = 4096
	cfg.LaunchBehavior = models.LaunchBehaviorHide
	cfg.ShowConsole = true
	cfg.GamePath = "/games/mc"
	return cfg
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestSettingsReconciler_Load_OfflineUsesHostOnly(t *testing.T) {
	f := newSettingsFixture(t, localConfig())

	cfg, err := f.svc.Load(testContext(), models.OfflineSession("steve"))
	require.NoError(t, err)

	assert.Equal(t, localConfig(), cfg)
	assert.Equal(t, models.SettingsReady, f.svc.State())
	assert.Equal(t, []string{"host:config:get"}, f.log.snapshot())
}

func TestSettingsReconciler_Load_CloudValuesTakePrecedence(t *testing.T) {
	f := newSettingsFixture(t, localConfig())
	session := cloudSession()

	f.gateway.EXPECT().
		FetchSyncableSettings(gomock.Any(), session.UserID).
		Return(&models.SyncableSettings{
			MinRAM:         intPtr(2048),
			MaxRAM:         intPtr(4096),
			LaunchBehavior: behaviorPtr(models.LaunchBehaviorMinimize),
		})

	cfg, err := f.svc.Load(testContext(), session)
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.MinRAM)
	assert.Equal(t, 4096, cfg.MaxRAM)
	assert.Equal(t, models.LaunchBehaviorMinimize, cfg.LaunchBehavior)
	assert.True(t, cfg.ShowConsole, "key absent from the cloud keeps its local value")
	assert.Equal(t, "/games/mc", cfg.GamePath)

	assert.Equal(t, cfg, f.host.stored(), "every merged key is written back to the host")

	snapshot, ready := f.svc.Snapshot()
	assert.True(t, ready)
	assert.Equal(t, cfg, snapshot)
}

func TestSettingsReconciler_Load_RetriesRefusedRAMKey(t *testing.T) {
	local := localConfig()
	local.MaxRAM = 2048
	f := newSettingsFixture(t, local)
	session := cloudSession()

	f.gateway.EXPECT().
		FetchSyncableSettings(gomock.Any(), session.UserID).
		Return(&models.SyncableSettings{MinRAM: intPtr(4096), MaxRAM: intPtr(8192)})

	cfg, err := f.svc.Load(testContext(), session)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.MinRAM)
	assert.Equal(t, 8192, cfg.MaxRAM)
	assert.Equal(t, []string{
		"host:config:get",
		`host:config:set "minRam"`,
		`host:config:set "maxRam"`,
		`host:config:set "minRam"`,
	}, f.log.snapshot())
}

func TestSettingsReconciler_Load_NoCloudRowKeepsLocal(t *testing.T) {
	f := newSettingsFixture(t, localConfig())
	session := cloudSession()

	f.gateway.EXPECT().FetchSyncableSettings(gomock.Any(), session.UserID).Return(nil)

	cfg, err := f.svc.Load(testContext(), session)
	require.NoError(t, err)
	assert.Equal(t, localConfig(), cfg)
	assert.Equal(t, models.SettingsReady, f.svc.State())
}

func TestSettingsReconciler_Load_HostFailure(t *testing.T) {
	f := newSettingsFixture(t, localConfig())
	f.host.handle(models.ChannelConfigGet, func([]json.RawMessage) (any, error) {
		return nil, errors.New("disk full")
	})

	_, err := f.svc.Load(testContext(), cloudSession())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSettingsLoadFailed)
	assert.Equal(t, models.SettingsFailed, f.svc.State())

	_, ready := f.svc.Snapshot()
	assert.False(t, ready)

	_, err = f.svc.Update(testContext(), cloudSession(), models.KeyMaxRAM, 8192)
	assert.ErrorIs(t, err, ErrSettingsNotReady)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestSettingsReconciler_Update_RAMSliderScenario(t *testing.T) {
	local := localConfig()
	local.LaunchBehavior = models.LaunchBehaviorKeepOpen
	f := newSettingsFixture(t, local)
	session := cloudSession()

	f.gateway.EXPECT().FetchSyncableSettings(gomock.Any(), session.UserID).Return(nil)
	_, err := f.svc.Load(testContext(), session)
	require.NoError(t, err)

	var mirrored models.Config
	f.gateway.EXPECT().
		SaveSyncableSettings(gomock.Any(), gomock.Any(), session.UserID).
		DoAndReturn(func(_ context.Context, cfg models.Config, _ string) bool {
			f.log.add("cloud:save")
			mirrored = cfg
			return false
		})

	cfg, err := f.svc.Update(testContext(), session, models.KeyMaxRAM, 8192)
	require.NoError(t, err)
	assert.Equal(t, 8192, cfg.MaxRAM)

	f.detached.Wait()

	calls := f.log.snapshot()
	require.Len(t, calls, 3)
	assert.Equal(t, `host:config:set "maxRam"`, calls[1])
	assert.Equal(t, "cloud:save", calls[2], "the host write happens before any cloud call")

	projection := models.ProjectSettings(mirrored)
	assert.Equal(t, 8192, *projection.MaxRAM)
	assert.Equal(t, 1024, *projection.MinRAM)
	assert.Equal(t, models.LaunchBehaviorKeepOpen, *projection.LaunchBehavior)
	assert.True(t, *projection.ShowConsole)

	snapshot, _ := f.svc.Snapshot()
	assert.Equal(t, 8192, snapshot.MaxRAM, "a failed mirror never rolls back the local value")
	assert.Equal(t, 8192, f.host.stored().MaxRAM)

	errs := f.sink.all()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errMirrorFailed)
}

func TestSettingsReconciler_Update_NoMirror(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		key     string
		value   any
	}{
		{name: "offline session", session: models.OfflineSession("steve"), key: models.KeyMaxRAM, value: 8192},
		{name: "device specific key", session: cloudSession(), key: models.KeyGamePath, value: "/other/mc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSettingsFixture(t, localConfig())
			f.gateway.EXPECT().FetchSyncableSettings(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			f.gateway.EXPECT().SaveSyncableSettings(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := f.svc.Load(testContext(), tt.session)
			require.NoError(t, err)

			_, err = f.svc.Update(testContext(), tt.session, tt.key, tt.value)
			require.NoError(t, err)
			f.detached.Wait()
		})
	}
}

func TestSettingsReconciler_Update_HostRefusalKeepsWorkingValue(t *testing.T) {
	f := newSettingsFixture(t, localConfig())
	session := cloudSession()

	f.gateway.EXPECT().FetchSyncableSettings(gomock.Any(), session.UserID).Return(nil)
	f.gateway.EXPECT().SaveSyncableSettings(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Load(testContext(), session)
	require.NoError(t, err)

	cfg, err := f.svc.Update(testContext(), session, models.KeyMinRAM, 9000)
	require.Error(t, err)
	assert.Equal(t, 9000, cfg.MinRAM)

	snapshot, ready := f.svc.Snapshot()
	assert.True(t, ready)
	assert.Equal(t, 9000, snapshot.MinRAM)
	assert.Equal(t, 1024, f.host.stored().MinRAM)
	f.detached.Wait()
}

func TestSettingsReconciler_Update_RejectsUnknownKey(t *testing.T) {
	f := newSettingsFixture(t, localConfig())

	_, err := f.svc.Load(testContext(), models.OfflineSession("steve"))
	require.NoError(t, err)

	_, err = f.svc.Update(testContext(), models.OfflineSession("steve"), "fov", 90)
	assert.ErrorIs(t, err, ErrUnknownConfigKey)
	assert.Len(t, f.log.snapshot(), 1, "nothing reaches the host")
}

func TestSettingsReconciler_Update_OverlappingEditsKeepBothKeys(t *testing.T) {
	f := newSettingsFixture(t, localConfig())
	session := cloudSession()

	f.gateway.EXPECT().FetchSyncableSettings(gomock.Any(), session.UserID).Return(nil)
	_, err := f.svc.Load(testContext(), session)
	require.NoError(t, err)

	var (
		savesMu sync.Mutex
		saves   []models.Config
	)
	f.gateway.EXPECT().
		SaveSyncableSettings(gomock.Any(), gomock.Any(), session.UserID).
		DoAndReturn(func(_ context.Context, cfg models.Config, _ string) bool {
			savesMu.Lock()
			defer savesMu.Unlock()
			saves = append(saves, cfg)
			return true
		}).
		Times(2)

	// The host stores minRam at once but its reply, a snapshot taken before
	// maxRam changes, arrives after the maxRam edit completed.
	set := f.host.handlers[models.ChannelConfigSet]
	arrived, release := make(chan struct{}), make(chan struct{})
	f.host.handle(models.ChannelConfigSet, func(args []json.RawMessage) (any, error) {
		out, err := set(args)
		if string(args[0]) == `"minRam"` {
			close(arrived)
			<-release
		}
		return out, err
	})

	minDone := make(chan error, 1)
	go func() {
		_, err := f.svc.Update(testContext(), session, models.KeyMinRAM, 2048)
		minDone <- err
	}()
	<-arrived

	_, err = f.svc.Update(testContext(), session, models.KeyMaxRAM, 8192)
	require.NoError(t, err)
	f.detached.Wait()

	close(release)
	require.NoError(t, <-minDone)
	f.detached.Wait()

	snapshot, _ := f.svc.Snapshot()
	assert.Equal(t, 2048, snapshot.MinRAM)
	assert.Equal(t, 8192, snapshot.MaxRAM)
	assert.Equal(t, 8192, f.host.stored().MaxRAM)

	savesMu.Lock()
	defer savesMu.Unlock()
	require.Len(t, saves, 2)
	last := saves[len(saves)-1]
	assert.Equal(t, 2048, last.MinRAM)
	assert.Equal(t, 8192, last.MaxRAM, "the mirror carries the other key unchanged")
}
