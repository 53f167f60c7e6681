// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *HostConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *LauncherConfig) validate() error {
	if cfg.Host.Address == "" || cfg.Host.RequestTimeout <= 0 {
		return ErrInvalidHostConfigs
	}

	if cfg.Backend.URL != "" && cfg.Backend.AnonKey == "" {
		return ErrInvalidBackendConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
