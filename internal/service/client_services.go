// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/channel"
	"github.com/MKhiriev/blocklauncher/internal/gateway"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/validators"
	"github.com/MKhiriev/blocklauncher/internal/workers"
	"github.com/MKhiriev/blocklauncher/models"
)

// ClientServices groups the launcher-side services.
type ClientServices struct {
	Settings  SettingsReconciler
	Instances InstanceService
	SyncJob   InstanceSyncJob
	Mods      ModService
	Social    SocialService
	Skins     SkinService

	gateway gateway.Gateway
}

// ClientDeps are the collaborators of [NewClientServices]. Realtime may be
// nil when live updates are disabled.
type ClientDeps struct {
	Channel  channel.Channel
	Gateway  gateway.Gateway
	Storage  adapter.ObjectStorage
	Realtime adapter.Realtime
	Detached *workers.Detached
}

func NewClientServices(deps ClientDeps, logger *logger.Logger) *ClientServices {
	validator := validators.NewInputValidator()
	instances := NewInstanceService(deps.Channel, deps.Gateway, validator, logger)

	return &ClientServices{
		Settings:  NewSettingsReconciler(deps.Channel, deps.Gateway, deps.Detached, logger),
		Instances: instances,
		SyncJob:   NewInstanceSyncJob(instances, logger),
		Mods:      NewModService(deps.Channel, logger),
		Social:    NewSocialService(deps.Gateway, deps.Channel, deps.Realtime, validator, logger),
		Skins:     NewSkinService(deps.Storage, validator, logger),
		gateway:   deps.Gateway,
	}
}

// NewUserSearch starts a debounced username search for session. The caller
// must Close it.
func (s *ClientServices) NewUserSearch(ctx context.Context, session models.Session, delay time.Duration, apply func(SearchResult)) UserSearch {
	return NewUserSearch(ctx, s.gateway, session, delay, apply)
}
