// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// host process and the launcher. It is populated by merging environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address of the host channel server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the host's local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Launcher holds host-side paths used by the instance services.
	Launcher Launcher `envPrefix:"LAUNCHER_"`

	// Host holds the launcher's view of the host channel.
	Host Host `envPrefix:"HOST_"`

	// Backend holds the hosted backend endpoint and credentials.
	Backend Backend `envPrefix:"BACKEND_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// UI holds terminal UI settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// on top of env and flags. Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds the host channel server settings.
type Server struct {
	// HTTPAddress is the loopback address the channel server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single channel invocation.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the host storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite settings of the host.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Launcher holds host-side filesystem settings.
type Launcher struct {
	// GamePath is the default game directory written on first run.
	// Env: LAUNCHER_GAME_PATH
	GamePath string `env:"GAME_PATH"`

	// ExternalDir is the directory of another launcher whose versions can be
	// imported with instance:import-external.
	// Env: LAUNCHER_EXTERNAL_DIR
	ExternalDir string `env:"EXTERNAL_DIR"`
}

// Host is the launcher's view of the host process.
type Host struct {
	// Address is the host channel server address ("127.0.0.1:7878").
	// Env: HOST_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every channel call made by the launcher.
	// Env: HOST_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Backend holds the hosted backend settings.
type Backend struct {
	// URL is the backend project URL. Empty disables every cloud feature.
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// AnonKey is the public API key sent with every backend request.
	// Env: BACKEND_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// RefreshToken is exchanged for a session at startup.
	// Env: BACKEND_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`

	// RequestTimeout bounds every backend call.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is how often local instances are pushed to the cloud.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// UI holds terminal UI settings.
type UI struct {
	// DebounceInterval is the quiet period before a search is dispatched.
	// Env: UI_DEBOUNCE_INTERVAL
	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL"`

	// Username is the offline account name used without a backend session.
	// Env: UI_USERNAME
	Username string `env:"USERNAME"`

	// LogDir is where the launcher log file is written.
	// Env: UI_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// GetStructuredConfig loads, merges and validates the configuration from
// env, the given command-line args and the optional JSON file, in that
// priority order (later non-zero fields win).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
