// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/store"
	"github.com/MKhiriev/blocklauncher/internal/utils"
)

// HostServices groups the services the host exposes over the local
// operation channel.
type HostServices struct {
	ConfigService   HostConfigService
	InstanceService HostInstanceService
	ModService      HostModService
}

// NewHostServices wires the host services to the SQLite repositories and
// the progress event publisher.
func NewHostServices(storages *store.HostStorages, cfg *config.HostConfig, events EventPublisher, logger *logger.Logger) *HostServices {
	return &HostServices{
		ConfigService:   NewHostConfigService(storages.ConfigRepository, storages.InstanceRepository, storages.ModRepository, cfg.Launcher, logger),
		InstanceService: NewHostInstanceService(storages.InstanceRepository, utils.NewUUIDGenerator(), events, cfg.Launcher, logger),
		ModService:      NewHostModService(storages.ModRepository, logger),
	}
}
