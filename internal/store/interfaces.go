// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/blocklauncher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigRepository stores launcher preferences as JSON values keyed by
// config key.
type ConfigRepository interface {
	GetAll(ctx context.Context) (map[string]json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	SetMany(ctx context.Context, entries map[string]json.RawMessage) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// InstanceRepository stores launcher instances.
type InstanceRepository interface {
	List(ctx context.Context) ([]models.Instance, error)
	Get(ctx context.Context, name string) (models.Instance, error)
	Save(ctx context.Context, instance models.Instance) error
	Delete(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}

// ModRepository stores the mods installed into each instance.
type ModRepository interface {
	List(ctx context.Context, instanceName string) ([]models.Mod, error)
	Save(ctx context.Context, mod models.Mod) error
	SetEnabled(ctx context.Context, instanceName, fileName string, enabled bool) error
	Delete(ctx context.Context, instanceName, fileName string) error
	Clear(ctx context.Context) error
}
