// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

func TestBuilder_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"HOST_ADDRESS":     "127.0.0.1:1111",
		"BACKEND_ANON_KEY": "from-env",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-host", "127.0.0.1:2222"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2222", cfg.Host.Address)
	assert.Equal(t, "from-env", cfg.Backend.AnonKey)
}

func TestBuilder_JSONOverridesFlags(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"ui":{"debounce_interval":"1s"}}`), 0o600))

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-debounce", "100ms", "-c", p}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.UI.DebounceInterval)
	assert.Equal(t, p, cfg.JSONFilePath)
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	clearEnvVars(t)

	_, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}).
		withJSON().
		build()

	assert.Error(t, err)
}

func TestBuilder_BadFlags(t *testing.T) {
	clearEnvVars(t)

	_, err := newConfigBuilder().withEnv().withFlags([]string{"-a", "bad"}).build()
	assert.Error(t, err)
}

// ── Views ──

func TestNewHostConfig_Defaults(t *testing.T) {
	cfg, err := NewHostConfig(&StructuredConfig{})
	require.NoError(t, err)

	assert.Equal(t, DefaultHostAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestNewHostConfig_InMemoryDSNRejected(t *testing.T) {
	_, err := NewHostConfig(&StructuredConfig{Storage: Storage{DB: DB{DSN: ":memory:"}}})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestNewHostConfig_NegativeTimeout(t *testing.T) {
	_, err := NewHostConfig(&StructuredConfig{Server: Server{RequestTimeout: -time.Second}})
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestNewLauncherConfig_Defaults(t *testing.T) {
	cfg, err := NewLauncherConfig(&StructuredConfig{})
	require.NoError(t, err)

	assert.Equal(t, DefaultHostAddress, cfg.Host.Address)
	assert.Equal(t, DefaultRequestTimeout, cfg.Host.RequestTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Backend.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultDebounceInterval, cfg.UI.DebounceInterval)
	assert.Equal(t, DefaultUsername, cfg.UI.Username)
	assert.False(t, cfg.CloudEnabled())
}

func TestNewLauncherConfig_BackendWithoutKey(t *testing.T) {
	_, err := NewLauncherConfig(&StructuredConfig{Backend: Backend{URL: "https://x.example.co"}})
	assert.ErrorIs(t, err, ErrInvalidBackendConfigs)
}

func TestNewLauncherConfig_NegativeSyncInterval(t *testing.T) {
	_, err := NewLauncherConfig(&StructuredConfig{Workers: Workers{SyncInterval: -time.Second}})
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestNewLauncherConfig_CloudEnabled(t *testing.T) {
	cfg, err := NewLauncherConfig(&StructuredConfig{Backend: Backend{URL: "https://x.example.co", AnonKey: "k"}})
	require.NoError(t, err)
	assert.True(t, cfg.CloudEnabled())
}
