// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"strings"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

func (g *remoteGateway) GetProfile(ctx context.Context, userID string) (models.Profile, bool) {
	if userID == "" {
		return models.Profile{}, false
	}
	return g.findProfile(ctx, "remoteGateway.GetProfile", adapter.NewQuery(profileColumns).Eq("id", userID).Limit(1))
}

func (g *remoteGateway) CheckUsernameExists(ctx context.Context, username string) (models.Profile, bool) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.Profile{}, false
	}
	return g.findProfile(ctx, "remoteGateway.CheckUsernameExists", adapter.NewQuery(profileColumns).Eq("username", username).Limit(1))
}

func (g *remoteGateway) findProfile(ctx context.Context, fn string, q adapter.Query) (models.Profile, bool) {
	var profiles []models.Profile
	if err := g.tables.Select(ctx, tableProfiles, q, &profiles); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to look up profile")
		return models.Profile{}, false
	}
	if len(profiles) == 0 {
		return models.Profile{}, false
	}
	return profiles[0], true
}

func (g *remoteGateway) SearchUsers(ctx context.Context, query, excludeUserID string) []models.Profile {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	q := adapter.NewQuery(profileColumns).
		ILike("username", "%"+query+"%").
		Order("username", true).
		Limit(searchLimit)
	if excludeUserID != "" {
		q = q.Neq("id", excludeUserID)
	}

	var profiles []models.Profile
	if err := g.tables.Select(ctx, tableProfiles, q, &profiles); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.SearchUsers").
			Str("query", query).
			Msg("user search failed")
		return nil
	}
	return profiles
}

func (g *remoteGateway) SendFriendRequest(ctx context.Context, requesterID, receiverID string) bool {
	if requesterID == "" || receiverID == "" || requesterID == receiverID {
		return false
	}

	row := friendshipInsert{RequesterID: requesterID, ReceiverID: receiverID, Status: models.StatusPending}
	if err := g.tables.Insert(ctx, tableFriendships, row); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.SendFriendRequest").
			Str("requester_id", requesterID).
			Str("receiver_id", receiverID).
			Msg("failed to send friend request")
		return false
	}
	return true
}

func (g *remoteGateway) AcceptFriendRequest(ctx context.Context, friendshipID string) bool {
	if friendshipID == "" {
		return false
	}

	patch := statusPatch{Status: models.StatusAccepted, UpdatedAt: g.now().UTC()}
	if err := g.tables.Update(ctx, tableFriendships, adapter.NewQuery("*").Eq("id", friendshipID), patch); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.AcceptFriendRequest").
			Str("friendship_id", friendshipID).
			Msg("failed to accept friend request")
		return false
	}
	return true
}

func (g *remoteGateway) RemoveFriend(ctx context.Context, friendshipID string) bool {
	if friendshipID == "" {
		return false
	}

	if err := g.tables.Delete(ctx, tableFriendships, adapter.NewQuery("*").Eq("id", friendshipID)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.RemoveFriend").
			Str("friendship_id", friendshipID).
			Msg("failed to remove friend")
		return false
	}
	return true
}

func (g *remoteGateway) GetFriendRequests(ctx context.Context, userID string) []models.Friendship {
	if userID == "" {
		return nil
	}

	q := adapter.NewQuery(friendshipColumns).
		Eq("receiver_id", userID).
		Eq("status", models.StatusPending).
		Order("created_at", false)

	return g.selectFriendships(ctx, "remoteGateway.GetFriendRequests", q)
}

func (g *remoteGateway) GetFriends(ctx context.Context, userID string) []models.Friend {
	if userID == "" {
		return nil
	}

	q := adapter.NewQuery(friendshipColumns).
		Eq("status", models.StatusAccepted).
		Or(adapter.EqCond("requester_id", userID), adapter.EqCond("receiver_id", userID))

	friendships := g.selectFriendships(ctx, "remoteGateway.GetFriends", q)

	friends := make([]models.Friend, 0, len(friendships))
	for _, f := range friendships {
		friend := models.Friend{FriendshipID: f.ID, Profile: models.Profile{ID: f.Other(userID)}}
		if p := f.OtherProfile(userID); p != nil {
			friend.Profile = *p
		}
		friends = append(friends, friend)
	}
	return friends
}

func (g *remoteGateway) selectFriendships(ctx context.Context, fn string, q adapter.Query) []models.Friendship {
	log := logger.FromContext(ctx)

	var rows []friendshipRow
	if err := g.tables.Select(ctx, tableFriendships, q, &rows); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to load friendships")
		return nil
	}

	friendships := make([]models.Friendship, 0, len(rows))
	for _, row := range rows {
		f, err := row.friendship()
		if err != nil {
			log.Warn().Err(err).Str("func", fn).Str("friendship_id", row.ID).Msg("skipping friendship with malformed profile")
			continue
		}
		friendships = append(friendships, f)
	}
	return friendships
}
