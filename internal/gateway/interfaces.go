// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"

	"github.com/MKhiriev/blocklauncher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway is the launcher's view of the hosted backend.
type Gateway interface {
	InstanceGateway
	SettingsGateway
	SocialGateway
	ShareGateway
}

// InstanceGateway mirrors launcher instances to the cloud, keyed by
// (owner id, instance name).
type InstanceGateway interface {
	// UpsertInstance writes one row, last write wins. It returns false
	// without calling the backend when ownerID is empty.
	UpsertInstance(ctx context.Context, instance models.Instance, ownerID string) bool
	// FetchInstances returns the cloud instances of ownerID, empty on error.
	FetchInstances(ctx context.Context, ownerID string) []models.Instance
	// DeleteInstance removes the row of name. Failures are only logged.
	DeleteInstance(ctx context.Context, name, ownerID string)
}

// SettingsGateway mirrors the syncable subset of the launcher config.
type SettingsGateway interface {
	// SaveSyncableSettings upserts the projection of cfg into the single
	// settings row of ownerID.
	SaveSyncableSettings(ctx context.Context, cfg models.Config, ownerID string) bool
	// FetchSyncableSettings returns the stored projection, or nil when there
	// is none or the backend failed.
	FetchSyncableSettings(ctx context.Context, ownerID string) *models.SyncableSettings
}

// SocialGateway covers profiles and friendships.
type SocialGateway interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, bool)
	SearchUsers(ctx context.Context, query, excludeUserID string) []models.Profile
	CheckUsernameExists(ctx context.Context, username string) (models.Profile, bool)
	SendFriendRequest(ctx context.Context, requesterID, receiverID string) bool
	AcceptFriendRequest(ctx context.Context, friendshipID string) bool
	RemoveFriend(ctx context.Context, friendshipID string) bool
	// GetFriendRequests returns the pending requests addressed to userID.
	GetFriendRequests(ctx context.Context, userID string) []models.Friendship
	// GetFriends returns the accepted friendships of userID from either side.
	GetFriends(ctx context.Context, userID string) []models.Friend
}

// ShareGateway transfers instance metadata between users.
type ShareGateway interface {
	ShareInstance(ctx context.Context, instance models.Instance, senderID, receiverID string) bool
	// GetSharedInstances returns the pending shares addressed to userID.
	GetSharedInstances(ctx context.Context, userID string) []models.SharedInstance
	AcceptSharedInstance(ctx context.Context, shareID string) bool
}
