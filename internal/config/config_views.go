// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// Defaults applied before validation when a source left the field empty.
const (
	DefaultHostAddress      = "127.0.0.1:7878"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultSyncInterval     = 5 * time.Minute
	DefaultDebounceInterval = 400 * time.Millisecond
	DefaultDSN              = "blocklauncher.db"
	DefaultUsername         = "Player"
)

// HostConfig is the subset of [StructuredConfig] read by the host process.
type HostConfig struct {
	Server   Server
	Storage  Storage
	Launcher Launcher
}

// LauncherConfig is the subset of [StructuredConfig] read by the launcher.
type LauncherConfig struct {
	Host    Host
	Backend Backend
	Workers Workers
	UI      UI
}

// GetHostConfig loads the configuration from os.Args and the environment and
// returns the validated host view.
func GetHostConfig() (*HostConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return NewHostConfig(cfg)
}

// GetLauncherConfig loads the configuration from os.Args and the environment
// and returns the validated launcher view.
func GetLauncherConfig() (*LauncherConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return NewLauncherConfig(cfg)
}

// NewHostConfig applies host defaults to cfg and validates the result.
func NewHostConfig(cfg *StructuredConfig) (*HostConfig, error) {
	hostCfg := &HostConfig{
		Server:   cfg.Server,
		Storage:  cfg.Storage,
		Launcher: cfg.Launcher,
	}

	if hostCfg.Server.HTTPAddress == "" {
		hostCfg.Server.HTTPAddress = DefaultHostAddress
	}
	if hostCfg.Server.RequestTimeout == 0 {
		hostCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if hostCfg.Storage.DB.DSN == "" {
		hostCfg.Storage.DB.DSN = DefaultDSN
	}

	if err := hostCfg.validate(); err != nil {
		return nil, fmt.Errorf("host config validation failed: %w", err)
	}

	return hostCfg, nil
}

// NewLauncherConfig applies launcher defaults to cfg and validates the result.
func NewLauncherConfig(cfg *StructuredConfig) (*LauncherConfig, error) {
	launcherCfg := &LauncherConfig{
		Host:    cfg.Host,
		Backend: cfg.Backend,
		Workers: cfg.Workers,
		UI:      cfg.UI,
	}

	if launcherCfg.Host.Address == "" {
		launcherCfg.Host.Address = DefaultHostAddress
	}
	if launcherCfg.Host.RequestTimeout == 0 {
		launcherCfg.Host.RequestTimeout = DefaultRequestTimeout
	}
	if launcherCfg.Backend.RequestTimeout == 0 {
		launcherCfg.Backend.RequestTimeout = DefaultRequestTimeout
	}
	if launcherCfg.Workers.SyncInterval == 0 {
		launcherCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if launcherCfg.UI.DebounceInterval == 0 {
		launcherCfg.UI.DebounceInterval = DefaultDebounceInterval
	}
	if launcherCfg.UI.Username == "" {
		launcherCfg.UI.Username = DefaultUsername
	}

	if err := launcherCfg.validate(); err != nil {
		return nil, fmt.Errorf("launcher config validation failed: %w", err)
	}

	return launcherCfg, nil
}

// CloudEnabled reports whether a backend is configured.
func (cfg *LauncherConfig) CloudEnabled() bool {
	return cfg.Backend.URL != ""
}
