// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"testing"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Profiles ─────────────────────────────────────────────────────────────────

func TestSearchUsers(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Select(gomock.Any(), tableProfiles, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, table string, q adapter.Query, out any) error {
			params := q.Params()
			assert.Equal(t, "ilike.*ste*", params.Get("username"))
			assert.Equal(t, "neq.me", params.Get("id"))
			assert.Equal(t, "10", params.Get("limit"))
			return fill(`[{"id":"u1","username":"steve"},{"id":"u2","username":"stella"}]`)(ctx, table, q, out)
		})

	got := g.SearchUsers(testContext(), "  ste ", "me")

	require.Len(t, got, 2)
	assert.Equal(t, "stella", got[1].Username)
}

func TestSearchUsers_BlankQueryAndFailure(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().Select(gomock.Any(), tableProfiles, gomock.Any(), gomock.Any()).Return(errBackend)

	assert.Empty(t, g.SearchUsers(testContext(), "   ", ""))
	assert.Empty(t, g.SearchUsers(testContext(), "steve", ""))
}

func TestCheckUsernameExists(t *testing.T) {
	g, tables := newTestGateway(t)
	gomock.InOrder(
		tables.EXPECT().Select(gomock.Any(), tableProfiles, gomock.Any(), gomock.Any()).DoAndReturn(fill(`[{"id":"u1","username":"steve"}]`)),
		tables.EXPECT().Select(gomock.Any(), tableProfiles, gomock.Any(), gomock.Any()).DoAndReturn(fill(`[]`)),
		tables.EXPECT().Select(gomock.Any(), tableProfiles, gomock.Any(), gomock.Any()).Return(errBackend),
	)

	p, ok := g.CheckUsernameExists(testContext(), "steve")
	assert.True(t, ok)
	assert.Equal(t, "u1", p.ID)

	_, ok = g.CheckUsernameExists(testContext(), "nobody")
	assert.False(t, ok)

	_, ok = g.CheckUsernameExists(testContext(), "steve")
	assert.False(t, ok)
}

func TestGetProfile(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Select(gomock.Any(), tableProfiles, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, table string, q adapter.Query, out any) error {
			assert.Equal(t, "eq.u1", q.Params().Get("id"))
			return fill(`[{"id":"u1","username":"steve","avatar_url":"https://cdn/u1.png"}]`)(ctx, table, q, out)
		})

	p, ok := g.GetProfile(testContext(), "u1")

	assert.True(t, ok)
	assert.Equal(t, "https://cdn/u1.png", p.AvatarURL)

	_, ok = g.GetProfile(testContext(), "")
	assert.False(t, ok)
}

// ── Friendships ──────────────────────────────────────────────────────────────

func TestSendFriendRequest(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Insert(gomock.Any(), tableFriendships, friendshipInsert{RequesterID: "me", ReceiverID: "u1", Status: models.StatusPending}).
		Return(nil)
	tables.EXPECT().Insert(gomock.Any(), tableFriendships, gomock.Any()).Return(adapter.ErrConflict)

	assert.True(t, g.SendFriendRequest(testContext(), "me", "u1"))
	assert.False(t, g.SendFriendRequest(testContext(), "me", "u2"))
	assert.False(t, g.SendFriendRequest(testContext(), "me", "me"))
	assert.False(t, g.SendFriendRequest(testContext(), "", "u1"))
}

func TestAcceptAndRemoveFriend(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Update(gomock.Any(), tableFriendships, gomock.Any(), statusPatch{Status: models.StatusAccepted, UpdatedAt: fixedNow}).
		DoAndReturn(func(_ context.Context, _ string, q adapter.Query, _ any) error {
			assert.Equal(t, "eq.f1", q.Filters().Get("id"))
			return nil
		})
	tables.EXPECT().Delete(gomock.Any(), tableFriendships, gomock.Any()).Return(errBackend)

	assert.True(t, g.AcceptFriendRequest(testContext(), "f1"))
	assert.False(t, g.RemoveFriend(testContext(), "f1"))
	assert.False(t, g.AcceptFriendRequest(testContext(), ""))
}

func TestGetFriendRequests_NormalizesJoinedProfiles(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Select(gomock.Any(), tableFriendships, gomock.Any(), gomock.Any()).
		DoAndReturn(fill(`[
			{"id":"f1","requester_id":"u1","receiver_id":"me","status":"pending","requester":{"id":"u1","username":"steve"}},
			{"id":"f2","requester_id":"u2","receiver_id":"me","status":"pending","requester":[{"id":"u2","username":"alex"}]},
			{"id":"f3","requester_id":"u3","receiver_id":"me","status":"pending","requester":"broken"}
		]`))

	got := g.GetFriendRequests(testContext(), "me")

	require.Len(t, got, 2)
	assert.Equal(t, "steve", got[0].Requester.Username)
	assert.Equal(t, "alex", got[1].Requester.Username)
	assert.Nil(t, got[1].Receiver)
}

func TestGetFriends(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Select(gomock.Any(), tableFriendships, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, table string, q adapter.Query, out any) error {
			params := q.Params()
			assert.Equal(t, "eq.accepted", params.Get("status"))
			assert.Equal(t, "(requester_id.eq.me,receiver_id.eq.me)", params.Get("or"))
			return fill(`[
				{"id":"f1","requester_id":"me","receiver_id":"u1","status":"accepted",
				 "requester":{"id":"me","username":"self"},"receiver":[{"id":"u1","username":"steve"}]},
				{"id":"f2","requester_id":"u2","receiver_id":"me","status":"accepted"}
			]`)(ctx, table, q, out)
		})

	got := g.GetFriends(testContext(), "me")

	require.Len(t, got, 2)
	assert.Equal(t, models.Friend{FriendshipID: "f1", Profile: models.Profile{ID: "u1", Username: "steve"}}, got[0])
	assert.Equal(t, models.Friend{FriendshipID: "f2", Profile: models.Profile{ID: "u2"}}, got[1])
}

func TestGetFriends_FailOpen(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().Select(gomock.Any(), tableFriendships, gomock.Any(), gomock.Any()).Return(errBackend)

	assert.Empty(t, g.GetFriends(testContext(), "me"))
	assert.Empty(t, g.GetFriendRequests(testContext(), ""))
}

// ── Shares ───────────────────────────────────────────────────────────────────

func TestShareInstance(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Insert(gomock.Any(), tableSharedInstances, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, row any) error {
			share := row.(shareInsert)
			assert.Equal(t, "me", share.SenderID)
			assert.Equal(t, "u1", share.ReceiverID)
			assert.Equal(t, models.StatusPending, share.Status)
			assert.JSONEq(t, `{"id":"","name":"Survival","game_version":"1.21","loader":"fabric"}`, string(share.InstanceData))
			return nil
		})

	instance := models.Instance{ID: "local-1", OwnerID: "me", Name: "Survival", GameVersion: "1.21", Loader: "fabric"}
	assert.True(t, g.ShareInstance(testContext(), instance, "me", "u1"))
	assert.False(t, g.ShareInstance(testContext(), instance, "me", ""))
}

func TestGetSharedInstances(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().
		Select(gomock.Any(), tableSharedInstances, gomock.Any(), gomock.Any()).
		DoAndReturn(fill(`[{"id":"s1","sender_id":"u1","receiver_id":"me","instance_name":"Survival",
			"instance_data":{"name":"Survival","game_version":"1.21"},"status":"pending",
			"sender":[{"id":"u1","username":"steve"}]}]`))

	got := g.GetSharedInstances(testContext(), "me")

	require.Len(t, got, 1)
	assert.Equal(t, "steve", got[0].Sender.Username)
	instance, err := got[0].Instance()
	require.NoError(t, err)
	assert.Equal(t, "1.21", instance.GameVersion)
}

func TestAcceptSharedInstance(t *testing.T) {
	g, tables := newTestGateway(t)
	tables.EXPECT().Update(gomock.Any(), tableSharedInstances, gomock.Any(), gomock.Any()).Return(nil)
	tables.EXPECT().Update(gomock.Any(), tableSharedInstances, gomock.Any(), gomock.Any()).Return(errBackend)

	assert.True(t, g.AcceptSharedInstance(testContext(), "s1"))
	assert.False(t, g.AcceptSharedInstance(testContext(), "s1"))
	assert.False(t, g.AcceptSharedInstance(testContext(), ""))
}
