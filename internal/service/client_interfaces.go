// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/blocklauncher/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SettingsReconciler owns the working configuration of the settings page.
// The host is the source of truth; the cloud copy of the syncable keys is
// merged in on load and mirrored on update, both best effort.
type SettingsReconciler interface {
	// Load reads the host config and, for cloud-linked sessions, overlays
	// the cloud projection and writes every overlaid key back to the host.
	// A host failure leaves the reconciler in the failed state.
	Load(ctx context.Context, session models.Session) (models.Config, error)

	// Update writes key to the host first, then mirrors the syncable keys
	// to the cloud without waiting for the outcome. A host failure is
	// returned but the in-memory value is kept.
	Update(ctx context.Context, session models.Session, key string, value any) (models.Config, error)

	// Snapshot returns a copy of the working config and whether it is ready.
	Snapshot() (models.Config, bool)

	State() models.SettingsState
}

// InstanceService manages the instances shown by the launcher.
type InstanceService interface {
	// List reloads the instances from the host.
	List(ctx context.Context) ([]models.Instance, error)

	// Items returns the instances as currently shown.
	Items() []models.Instance

	// Delete removes the instance from view at once, deletes it on the host
	// and then from the cloud. The channel reports the host outcome.
	Delete(ctx context.Context, session models.Session, name string) (<-chan error, error)

	// Import creates instances from external versions, reporting host
	// progress to onProgress while the import runs.
	Import(ctx context.Context, versionIDs []string, onProgress func(models.ProgressEvent)) ([]models.Instance, error)

	// PushToCloud upserts every local instance. It skips the push when
	// nothing changed since the last successful one.
	PushToCloud(ctx context.Context, session models.Session) (int, error)

	// PullFromCloud saves the cloud instances missing on this device and
	// returns them.
	PullFromCloud(ctx context.Context, session models.Session) ([]models.Instance, error)
}

// InstanceSyncJob periodically pushes local instances to the cloud.
type InstanceSyncJob interface {
	// Start stops a running job and pushes every interval, five minutes
	// when interval is not positive, until ctx is done or Stop is called.
	Start(ctx context.Context, session models.Session, interval time.Duration)

	// Stop ends the job and waits for it to exit.
	Stop()
}

// ModService manages the mods of one instance.
type ModService interface {
	Load(ctx context.Context, instanceName string) ([]models.Mod, error)
	Items() []models.Mod
	OnChange(fn func([]models.Mod))

	// Toggle flips the enabled flag at once and reverts it if the host
	// refuses.
	Toggle(ctx context.Context, fileName string) (<-chan error, error)

	// Delete removes the mod at once and reloads the list if the host
	// refuses.
	Delete(ctx context.Context, fileName string) (<-chan error, error)
}

// SocialService drives the friends tab.
type SocialService interface {
	// Overview loads the profile, friends, incoming requests and pending
	// shares of the session user concurrently.
	Overview(ctx context.Context, session models.Session) (models.SocialOverview, error)
	Friends() []models.Friend

	SendRequest(ctx context.Context, session models.Session, username string) error
	Accept(ctx context.Context, session models.Session, friendshipID string) error

	// Remove drops the friend from view at once and reloads the friends if
	// the backend refuses.
	Remove(ctx context.Context, session models.Session, friendshipID string) (<-chan error, error)

	Share(ctx context.Context, session models.Session, instanceName, receiverID string) error

	// AcceptShare saves the shared instance on this device and marks the
	// share accepted.
	AcceptShare(ctx context.Context, session models.Session, shareID string) (models.Instance, error)

	// Watch calls onChange whenever a friendship or share addressed to the
	// session user changes, until the returned func is called.
	Watch(ctx context.Context, session models.Session, onChange func()) (func(), error)
}

// SkinService uploads and locates skins and capes.
type SkinService interface {
	UploadSkin(ctx context.Context, session models.Session, path string) (string, error)
	UploadCape(ctx context.Context, session models.Session, path string) (string, error)

	// TextureURL returns the public URL of the user's texture if one exists.
	TextureURL(ctx context.Context, kind models.TextureKind, userID string) (string, bool)
}

// UserSearch dispatches debounced username searches.
type UserSearch interface {
	Input(query string)
	Close()
}
