// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"SERVER_ADDRESS":         "127.0.0.1:7878",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/blocklauncher/host.db",

		"LAUNCHER_GAME_PATH":    "/games/minecraft",
		"LAUNCHER_EXTERNAL_DIR": "/home/user/.minecraft",

		"HOST_ADDRESS":         "localhost:7878",
		"HOST_REQUEST_TIMEOUT": "5s",

		"BACKEND_URL":             "https://project.example.co",
		"BACKEND_ANON_KEY":        "anon",
		"BACKEND_REFRESH_TOKEN":   "refresh",
		"BACKEND_REQUEST_TIMEOUT": "15s",

		"WORKERS_SYNC_INTERVAL": "10m",

		"UI_DEBOUNCE_INTERVAL": "500ms",
		"UI_USERNAME":          "Steve",
		"UI_LOG_DIR":           "/tmp/logs",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "127.0.0.1:7878", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/blocklauncher/host.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/games/minecraft", cfg.Launcher.GamePath)
	assert.Equal(t, "/home/user/.minecraft", cfg.Launcher.ExternalDir)

	assert.Equal(t, "localhost:7878", cfg.Host.Address)
	assert.Equal(t, 5*time.Second, cfg.Host.RequestTimeout)

	assert.Equal(t, "https://project.example.co", cfg.Backend.URL)
	assert.Equal(t, "anon", cfg.Backend.AnonKey)
	assert.Equal(t, "refresh", cfg.Backend.RefreshToken)
	assert.Equal(t, 15*time.Second, cfg.Backend.RequestTimeout)

	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)

	assert.Equal(t, 500*time.Millisecond, cfg.UI.DebounceInterval)
	assert.Equal(t, "Steve", cfg.UI.Username)
	assert.Equal(t, "/tmp/logs", cfg.UI.LogDir)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BACKEND_URL":    "https://project.example.co",
		"SERVER_ADDRESS": "localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://project.example.co", cfg.Backend.URL)
	assert.Empty(t, cfg.Backend.AnonKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.UI.DebounceInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"UI_DEBOUNCE_INTERVAL": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading environment")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"STORAGE_DB_DSN",
		"LAUNCHER_GAME_PATH",
		"LAUNCHER_EXTERNAL_DIR",

		"HOST_ADDRESS",
		"HOST_REQUEST_TIMEOUT",
		"BACKEND_URL",
		"BACKEND_ANON_KEY",
		"BACKEND_REFRESH_TOKEN",
		"BACKEND_REQUEST_TIMEOUT",
		"WORKERS_SYNC_INTERVAL",
		"UI_DEBOUNCE_INTERVAL",
		"UI_USERNAME",
		"UI_LOG_DIR",
	}
	for _, k := range keys {
		// t.Setenv registers the restore, Unsetenv leaves the key absent.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
