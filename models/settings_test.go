// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ProjectSettings ──────────────────────────────────────────────────────────

func TestProjectSettings_ContainsOnlyAllowListedKeys(t *testing.T) {
	cfgs := []Config{
		DefaultConfig(),
		{
			MinRAM:         2048,
			MaxRAM:         8192,
			LaunchBehavior: LaunchBehaviorKeepOpen,
			ShowConsole:    true,
			GamePath:       "/home/steve/.minecraft",
			InstancesPath:  "/home/steve/instances",
			JavaPaths:      map[string]string{"17": "/usr/lib/jvm/17/bin/java"},
		},
	}

	for _, cfg := range cfgs {
		projected := ProjectSettings(cfg)

		values := projected.Values()
		assert.ElementsMatch(t, SyncableKeys, keysOf(values))

		raw, err := json.Marshal(projected)
		require.NoError(t, err)

		var asMap map[string]any
		require.NoError(t, json.Unmarshal(raw, &asMap))
		assert.ElementsMatch(t, SyncableKeys, keysOf(asMap))
		assert.NotContains(t, asMap, KeyGamePath)
		assert.NotContains(t, asMap, KeyJavaPaths)
		assert.NotContains(t, asMap, KeyInstancesPath)
	}
}

func TestProjectSettings_CopiesValues(t *testing.T) {
	cfg := Config{MinRAM: 1024, MaxRAM: 4096, LaunchBehavior: LaunchBehaviorMinimize, ShowConsole: true}
	projected := ProjectSettings(cfg)

	cfg.MaxRAM = 1
	assert.Equal(t, 4096, *projected.MaxRAM)
	assert.Equal(t, LaunchBehaviorMinimize, *projected.LaunchBehavior)
	assert.True(t, *projected.ShowConsole)
}

// ── ApplyTo ──────────────────────────────────────────────────────────────────

func TestSyncableSettings_ApplyTo_OverlaysPresentFieldsOnly(t *testing.T) {
	minRAM := 2048
	cloud := SyncableSettings{MinRAM: &minRAM}
	cfg := Config{MinRAM: 1024, MaxRAM: 4096, LaunchBehavior: LaunchBehaviorHide, GamePath: "/games"}

	applied := cloud.ApplyTo(&cfg)

	assert.Equal(t, []string{KeyMinRAM}, applied)
	assert.Equal(t, 2048, cfg.MinRAM)
	assert.Equal(t, 4096, cfg.MaxRAM)
	assert.Equal(t, LaunchBehaviorHide, cfg.LaunchBehavior)
	assert.Equal(t, "/games", cfg.GamePath)
}

func TestSyncableSettings_ApplyTo_SkipsEmptyBehavior(t *testing.T) {
	empty := LaunchBehavior("")
	cloud := SyncableSettings{LaunchBehavior: &empty}
	cfg := Config{LaunchBehavior: LaunchBehaviorMinimize}

	applied := cloud.ApplyTo(&cfg)

	assert.Empty(t, applied)
	assert.Equal(t, LaunchBehaviorMinimize, cfg.LaunchBehavior)
}

// ── Config ───────────────────────────────────────────────────────────────────

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultConfig()},
		{name: "equal bounds", cfg: Config{MinRAM: 2048, MaxRAM: 2048}},
		{name: "min above max", cfg: Config{MinRAM: 8192, MaxRAM: 4096}, wantErr: true},
		{name: "zero", cfg: Config{}, wantErr: true},
		{name: "bad behavior", cfg: Config{MinRAM: 1, MaxRAM: 2, LaunchBehavior: "explode"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_SetField(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetField(KeyMaxRAM, json.RawMessage(`8192`)))
	require.NoError(t, cfg.SetField(KeyLaunchBehavior, json.RawMessage(`"minimize"`)))
	require.NoError(t, cfg.SetField(KeyJavaPaths, json.RawMessage(`{"21":"/opt/java21"}`)))

	assert.Equal(t, 8192, cfg.MaxRAM)
	assert.Equal(t, LaunchBehaviorMinimize, cfg.LaunchBehavior)
	assert.Equal(t, "/opt/java21", cfg.JavaPaths["21"])

	assert.ErrorIs(t, cfg.SetField("volume", json.RawMessage(`1`)), ErrUnknownConfigKey)
	assert.Error(t, cfg.SetField(KeyLaunchBehavior, json.RawMessage(`"explode"`)))
	assert.Error(t, cfg.SetField(KeyMinRAM, json.RawMessage(`"lots"`)))
	assert.Equal(t, LaunchBehaviorMinimize, cfg.LaunchBehavior)
}

func TestSession_IsCloudLinked(t *testing.T) {
	assert.False(t, OfflineSession("steve").IsCloudLinked())
	assert.False(t, Session{AccountType: AccountCloud}.IsCloudLinked())
	assert.True(t, Session{AccountType: AccountCloud, UserID: "u1"}.IsCloudLinked())
}

func keysOf[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
