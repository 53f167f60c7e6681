// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/mock"
	"github.com/MKhiriev/blocklauncher/internal/validators"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type socialFixture struct {
	host     *instanceHost
	gateway  *mock.MockGateway
	realtime *mock.MockRealtime
	svc      *socialService
}

func newSocialFixture(t *testing.T, instances ...models.Instance) *socialFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &socialFixture{
		host:     newInstanceHost(t, instances...),
		gateway:  mock.NewMockGateway(ctrl),
		realtime: mock.NewMockRealtime(ctrl),
	}
	f.svc = NewSocialService(f.gateway, f.host, f.realtime, validators.NewInputValidator(), logger.Nop()).(*socialService)
	return f
}

var (
	alex  = models.Profile{ID: "user-2", Username: "alex"}
	steve = models.Profile{ID: "user-1", Username: "steve"}
)

// ── Overview ─────────────────────────────────────────────────────────────────

func TestSocialService_Overview(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()
	friends := []models.Friend{{FriendshipID: "f-1", Profile: alex}}
	requests := []models.Friendship{{ID: "f-2", RequesterID: "user-3", ReceiverID: session.UserID, Status: models.StatusPending}}
	shares := []models.SharedInstance{{ID: "s-1", SenderID: alex.ID, ReceiverID: session.UserID, InstanceName: "Fabric"}}

	f.gateway.EXPECT().GetProfile(gomock.Any(), session.UserID).Return(steve, true)
	f.gateway.EXPECT().GetFriends(gomock.Any(), session.UserID).Return(friends)
	f.gateway.EXPECT().GetFriendRequests(gomock.Any(), session.UserID).Return(requests)
	f.gateway.EXPECT().GetSharedInstances(gomock.Any(), session.UserID).Return(shares)

	overview, err := f.svc.Overview(testContext(), session)
	require.NoError(t, err)

	require.NotNil(t, overview.Profile)
	assert.Equal(t, steve, *overview.Profile)
	assert.Equal(t, friends, overview.Friends)
	assert.Equal(t, requests, overview.Requests)
	assert.Equal(t, shares, overview.Shares)
	assert.Equal(t, friends, f.svc.Friends())
}

func TestSocialService_Overview_MissingProfile(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()

	f.gateway.EXPECT().GetProfile(gomock.Any(), session.UserID).Return(models.Profile{}, false)
	f.gateway.EXPECT().GetFriends(gomock.Any(), session.UserID).Return(nil)
	f.gateway.EXPECT().GetFriendRequests(gomock.Any(), session.UserID).Return(nil)
	f.gateway.EXPECT().GetSharedInstances(gomock.Any(), session.UserID).Return(nil)

	overview, err := f.svc.Overview(testContext(), session)
	require.NoError(t, err)
	assert.Nil(t, overview.Profile)
}

func TestSocialService_RequiresCloudSession(t *testing.T) {
	f := newSocialFixture(t)
	offline := models.OfflineSession("steve")
	ctx := testContext()

	_, err := f.svc.Overview(ctx, offline)
	assert.ErrorIs(t, err, ErrCloudUnavailable)
	assert.ErrorIs(t, f.svc.SendRequest(ctx, offline, "alex"), ErrCloudUnavailable)
	assert.ErrorIs(t, f.svc.Accept(ctx, offline, "f-1"), ErrCloudUnavailable)
	assert.ErrorIs(t, f.svc.Share(ctx, offline, "Fabric", "user-2"), ErrCloudUnavailable)
	_, err = f.svc.Remove(ctx, offline, "f-1")
	assert.ErrorIs(t, err, ErrCloudUnavailable)
	_, err = f.svc.AcceptShare(ctx, offline, "s-1")
	assert.ErrorIs(t, err, ErrCloudUnavailable)
	_, err = f.svc.Watch(ctx, offline, func() {})
	assert.ErrorIs(t, err, ErrCloudUnavailable)
}

// ── Friend requests ──────────────────────────────────────────────────────────

func TestSocialService_SendRequest(t *testing.T) {
	tests := []struct {
		name     string
		username string
		setup    func(gw *mock.MockGateway)
		wantErr  error
	}{
		{
			name:     "sent",
			username: "alex",
			setup: func(gw *mock.MockGateway) {
				gw.EXPECT().CheckUsernameExists(gomock.Any(), "alex").Return(alex, true)
				gw.EXPECT().SendFriendRequest(gomock.Any(), "user-1", alex.ID).Return(true)
			},
		},
		{
			name:     "invalid username",
			username: "a b",
			setup:    func(*mock.MockGateway) {},
			wantErr:  validators.ErrInvalidUsername,
		},
		{
			name:     "unknown username",
			username: "nobody",
			setup: func(gw *mock.MockGateway) {
				gw.EXPECT().CheckUsernameExists(gomock.Any(), "nobody").Return(models.Profile{}, false)
			},
			wantErr: ErrUsernameNotFound,
		},
		{
			name:     "self",
			username: "steve",
			setup: func(gw *mock.MockGateway) {
				gw.EXPECT().CheckUsernameExists(gomock.Any(), "steve").Return(steve, true)
			},
			wantErr: ErrCannotBefriendSelf,
		},
		{
			name:     "backend refuses",
			username: "alex",
			setup: func(gw *mock.MockGateway) {
				gw.EXPECT().CheckUsernameExists(gomock.Any(), "alex").Return(alex, true)
				gw.EXPECT().SendFriendRequest(gomock.Any(), "user-1", alex.ID).Return(false)
			},
			wantErr: ErrRequestNotSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSocialFixture(t)
			tt.setup(f.gateway)

			err := f.svc.SendRequest(testContext(), cloudSession(), tt.username)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSocialService_Accept(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()
	friends := []models.Friend{{FriendshipID: "f-2", Profile: alex}}

	f.gateway.EXPECT().AcceptFriendRequest(gomock.Any(), "f-2").Return(true)
	f.gateway.EXPECT().GetFriends(gomock.Any(), session.UserID).Return(friends)

	require.NoError(t, f.svc.Accept(testContext(), session, "f-2"))
	assert.Equal(t, friends, f.svc.Friends())
}

func TestSocialService_Accept_Failure(t *testing.T) {
	f := newSocialFixture(t)
	f.gateway.EXPECT().AcceptFriendRequest(gomock.Any(), "f-2").Return(false)

	assert.ErrorIs(t, f.svc.Accept(testContext(), cloudSession(), "f-2"), ErrFriendActionFailed)
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestSocialService_Remove(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()
	friends := []models.Friend{{FriendshipID: "f-1", Profile: alex}, {FriendshipID: "f-3", Profile: models.Profile{ID: "user-3"}}}
	f.svc.friends.Replace(friends)

	f.gateway.EXPECT().RemoveFriend(gomock.Any(), "f-1").Return(true)

	done, err := f.svc.Remove(testContext(), session, "f-1")
	require.NoError(t, err)
	require.NoError(t, <-done)
	assert.Equal(t, friends[1:], f.svc.Friends())
}

func TestSocialService_Remove_FailureReloads(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()
	friends := []models.Friend{{FriendshipID: "f-1", Profile: alex}}
	f.svc.friends.Replace(friends)

	f.gateway.EXPECT().RemoveFriend(gomock.Any(), "f-1").Return(false)
	f.gateway.EXPECT().GetFriends(gomock.Any(), session.UserID).Return(friends)

	done, err := f.svc.Remove(testContext(), session, "f-1")
	require.NoError(t, err)
	assert.Empty(t, f.svc.Friends(), "removed before the backend answers")

	assert.ErrorIs(t, <-done, ErrFriendActionFailed)
	assert.Equal(t, friends, f.svc.Friends())
}

func TestSocialService_Remove_OutageKeepsFriends(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()
	friends := []models.Friend{{FriendshipID: "f-1", Profile: alex}, {FriendshipID: "f-3", Profile: models.Profile{ID: "user-3"}}}
	f.svc.friends.Replace(friends)

	f.gateway.EXPECT().RemoveFriend(gomock.Any(), "f-1").Return(false)
	f.gateway.EXPECT().GetFriends(gomock.Any(), session.UserID).Return(nil)

	done, err := f.svc.Remove(testContext(), session, "f-1")
	require.NoError(t, err)

	assert.ErrorIs(t, <-done, ErrFriendActionFailed)
	assert.Equal(t, friends, f.svc.Friends(), "the friend goes back to its place")
}

// ── Shares ───────────────────────────────────────────────────────────────────

func TestSocialService_Share(t *testing.T) {
	f := newSocialFixture(t, vanilla, fabric)

	f.gateway.EXPECT().ShareInstance(gomock.Any(), fabric, "user-1", alex.ID).Return(true)

	require.NoError(t, f.svc.Share(testContext(), cloudSession(), "Fabric", alex.ID))
}

func TestSocialService_Share_Errors(t *testing.T) {
	tests := []struct {
		name     string
		instance string
		receiver string
		setup    func(gw *mock.MockGateway)
		wantErr  error
	}{
		{name: "no receiver", instance: "Fabric", receiver: "", setup: func(*mock.MockGateway) {}, wantErr: validators.ErrInvalidReceiver},
		{name: "unknown instance", instance: "Forge", receiver: alex.ID, setup: func(*mock.MockGateway) {}, wantErr: ErrInstanceNotFound},
		{
			name:     "backend refuses",
			instance: "Fabric",
			receiver: alex.ID,
			setup: func(gw *mock.MockGateway) {
				gw.EXPECT().ShareInstance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
			},
			wantErr: ErrShareFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSocialFixture(t, fabric)
			tt.setup(f.gateway)

			err := f.svc.Share(testContext(), cloudSession(), tt.instance, tt.receiver)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSocialService_AcceptShare(t *testing.T) {
	f := newSocialFixture(t, vanilla)
	session := cloudSession()

	data, err := json.Marshal(models.Instance{Name: "Fabric", GameVersion: "1.20.4", Loader: "fabric"})
	require.NoError(t, err)
	share := models.SharedInstance{ID: "s-1", SenderID: alex.ID, ReceiverID: session.UserID, InstanceName: "Fabric", InstanceData: data}

	f.gateway.EXPECT().GetSharedInstances(gomock.Any(), session.UserID).Return([]models.SharedInstance{share})
	f.gateway.EXPECT().AcceptSharedInstance(gomock.Any(), "s-1").Return(false)

	saved, err := f.svc.AcceptShare(testContext(), session, "s-1")
	require.NoError(t, err, "a failed remote accept is not reported")

	assert.Equal(t, "Fabric", saved.Name)
	assert.Equal(t, "fabric", saved.Loader)
	assert.Equal(t, "local-Fabric", saved.ID)
	assert.Equal(t, []string{"Vanilla", "Fabric"}, f.host.names())
}

func TestSocialService_AcceptShare_NotFound(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()

	f.gateway.EXPECT().GetSharedInstances(gomock.Any(), session.UserID).Return(nil)

	_, err := f.svc.AcceptShare(testContext(), session, "s-9")
	assert.ErrorIs(t, err, ErrShareNotFound)
}

// ── Watch ────────────────────────────────────────────────────────────────────

func TestSocialService_Watch(t *testing.T) {
	f := newSocialFixture(t)
	session := cloudSession()

	var (
		handlers []adapter.ChangeHandler
		joined   []string
	)
	stopped := 0
	subscribe := func(_ context.Context, table, filter string, handler adapter.ChangeHandler) (func(), error) {
		joined = append(joined, table+"?"+filter)
		handlers = append(handlers, handler)
		return func() { stopped++ }, nil
	}
	f.realtime.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(subscribe).Times(3)

	changes := 0
	stop, err := f.svc.Watch(testContext(), session, func() { changes++ })
	require.NoError(t, err)

	assert.Equal(t, []string{
		"friendships?receiver_id=eq.user-1",
		"friendships?requester_id=eq.user-1",
		"shared_instances?receiver_id=eq.user-1",
	}, joined, "friendships the user sent are watched as well as those received")

	require.Len(t, handlers, 3)
	handlers[0](adapter.Change{Type: "INSERT"})
	handlers[1](adapter.Change{Type: "UPDATE"})
	handlers[2](adapter.Change{Type: "INSERT"})
	assert.Equal(t, 3, changes)

	stop()
	assert.Equal(t, 3, stopped)
}

func TestSocialService_Watch_SubscribeFails(t *testing.T) {
	f := newSocialFixture(t)

	stopped := 0
	f.realtime.EXPECT().Subscribe(gomock.Any(), "friendships", gomock.Any(), gomock.Any()).
		Return(func() { stopped++ }, nil).
		Times(2)
	f.realtime.EXPECT().Subscribe(gomock.Any(), "shared_instances", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("join refused"))

	_, err := f.svc.Watch(testContext(), cloudSession(), func() {})
	require.Error(t, err)
	assert.Equal(t, 2, stopped, "earlier subscriptions are released")
}
