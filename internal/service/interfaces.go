// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/blocklauncher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/host_service_mock.go -package=mock

// HostConfigService owns the launcher preferences on the host side.
type HostConfigService interface {
	// Get returns the stored configuration merged over the defaults. The
	// first call on an empty database persists the defaults.
	Get(ctx context.Context) (models.Config, error)

	// Set decodes raw into the field named key, validates the result and
	// persists it. Unknown keys and minRam > maxRam are rejected.
	Set(ctx context.Context, key string, raw json.RawMessage) (models.Config, error)

	// SetGamePath changes the game directory.
	SetGamePath(ctx context.Context, path string) (models.Config, error)

	// SelectJava records path as the runtime for the Java major version.
	SelectJava(ctx context.Context, version, path string) (models.Config, error)

	// ResetJava forgets the runtime of version, or of every version when
	// version is empty.
	ResetJava(ctx context.Context, version string) (models.Config, error)

	// ResetApp wipes the settings (mode "settings") or everything the host
	// stores (mode "full").
	ResetApp(ctx context.Context, mode string) error
}

// HostInstanceService manages the instances known to the host.
type HostInstanceService interface {
	List(ctx context.Context) ([]models.Instance, error)
	Save(ctx context.Context, instance models.Instance) (models.Instance, error)
	Delete(ctx context.Context, name string) error

	// ImportExternal creates one instance per version id found in the
	// external launcher directory and reports progress on the event bus.
	ImportExternal(ctx context.Context, versionIDs []string) ([]models.Instance, error)
}

// HostModService manages the mods of an instance.
type HostModService interface {
	List(ctx context.Context, instanceName string) ([]models.Mod, error)
	Toggle(ctx context.Context, instanceName, fileName string, enabled bool) error
	Delete(ctx context.Context, instanceName, fileName string) error
}

// EventPublisher receives progress events of long-running host operations.
type EventPublisher interface {
	Publish(ev models.Event)
}

// IDGenerator produces identifiers for new instances.
type IDGenerator interface {
	Generate() string
}
