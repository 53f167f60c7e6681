// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/channel"
	"github.com/MKhiriev/blocklauncher/internal/gateway"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/optimistic"
	"github.com/MKhiriev/blocklauncher/internal/validators"
	"github.com/MKhiriev/blocklauncher/models"
	"golang.org/x/sync/errgroup"
)

// socialGateway is the part of [gateway.Gateway] the social service uses.
type socialGateway interface {
	gateway.SocialGateway
	gateway.ShareGateway
}

type socialService struct {
	gateway   socialGateway
	channel   channel.Channel
	realtime  adapter.Realtime
	validator validators.Validator
	logger    *logger.Logger

	friends *optimistic.List[string, models.Friend]
}

// NewSocialService returns the [SocialService]. realtime may be nil, in
// which case Watch is unavailable.
func NewSocialService(
	gw socialGateway,
	ch channel.Channel,
	realtime adapter.Realtime,
	validator validators.Validator,
	logger *logger.Logger,
) SocialService {
	return &socialService{
		gateway:   gw,
		channel:   ch,
		realtime:  realtime,
		validator: validator,
		logger:    logger,
		friends:   optimistic.NewList(models.Friend.Key, nil),
	}
}

func (s *socialService) Overview(ctx context.Context, session models.Session) (models.SocialOverview, error) {
	if !session.IsCloudLinked() {
		return models.SocialOverview{}, ErrCloudUnavailable
	}

	var overview models.SocialOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if p, ok := s.gateway.GetProfile(gctx, session.UserID); ok {
			overview.Profile = &p
		}
		return nil
	})
	g.Go(func() error {
		overview.Friends = s.gateway.GetFriends(gctx, session.UserID)
		return nil
	})
	g.Go(func() error {
		overview.Requests = s.gateway.GetFriendRequests(gctx, session.UserID)
		return nil
	})
	g.Go(func() error {
		overview.Shares = s.gateway.GetSharedInstances(gctx, session.UserID)
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.SocialOverview{}, err
	}

	s.friends.Replace(overview.Friends)
	return overview, nil
}

func (s *socialService) Friends() []models.Friend {
	return s.friends.Items()
}

func (s *socialService) SendRequest(ctx context.Context, session models.Session, username string) error {
	if !session.IsCloudLinked() {
		return ErrCloudUnavailable
	}
	if err := s.validator.Validate(ctx, models.FriendRequestInput{Username: username}); err != nil {
		return err
	}

	profile, ok := s.gateway.CheckUsernameExists(ctx, username)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUsernameNotFound, username)
	}
	if profile.ID == session.UserID {
		return ErrCannotBefriendSelf
	}

	if !s.gateway.SendFriendRequest(ctx, session.UserID, profile.ID) {
		return ErrRequestNotSent
	}
	return nil
}

func (s *socialService) Accept(ctx context.Context, session models.Session, friendshipID string) error {
	if !session.IsCloudLinked() {
		return ErrCloudUnavailable
	}
	if !s.gateway.AcceptFriendRequest(ctx, friendshipID) {
		return ErrFriendActionFailed
	}
	s.friends.Replace(s.gateway.GetFriends(ctx, session.UserID))
	return nil
}

func (s *socialService) Remove(ctx context.Context, session models.Session, friendshipID string) (<-chan error, error) {
	if !session.IsCloudLinked() {
		return nil, ErrCloudUnavailable
	}

	return s.friends.Remove(ctx, friendshipID,
		func(ctx context.Context, f models.Friend) error {
			if !s.gateway.RemoveFriend(ctx, f.FriendshipID) {
				return ErrFriendActionFailed
			}
			return nil
		},
		func(ctx context.Context) ([]models.Friend, error) {
			// The backend refused the removal, so a reload without that
			// friendship is an outage answer, not the confirmed state.
			friends := s.gateway.GetFriends(ctx, session.UserID)
			if !slices.ContainsFunc(friends, func(f models.Friend) bool { return f.FriendshipID == friendshipID }) {
				return nil, errFriendsReloadFailed
			}
			return friends, nil
		},
	)
}

func (s *socialService) Share(ctx context.Context, session models.Session, instanceName, receiverID string) error {
	if !session.IsCloudLinked() {
		return ErrCloudUnavailable
	}
	if err := s.validator.Validate(ctx, models.ShareRequest{InstanceName: instanceName, ReceiverID: receiverID}); err != nil {
		return err
	}

	var instances []models.Instance
	if err := channel.Call(ctx, s.channel, models.ChannelInstanceList, &instances); err != nil {
		return err
	}

	for _, instance := range instances {
		if instance.Name != instanceName {
			continue
		}
		if !s.gateway.ShareInstance(ctx, instance, session.UserID, receiverID) {
			return ErrShareFailed
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInstanceNotFound, instanceName)
}

func (s *socialService) AcceptShare(ctx context.Context, session models.Session, shareID string) (models.Instance, error) {
	if !session.IsCloudLinked() {
		return models.Instance{}, ErrCloudUnavailable
	}

	var share *models.SharedInstance
	for _, candidate := range s.gateway.GetSharedInstances(ctx, session.UserID) {
		if candidate.ID == shareID {
			share = &candidate
			break
		}
	}
	if share == nil {
		return models.Instance{}, fmt.Errorf("%w: %s", ErrShareNotFound, shareID)
	}

	instance, err := share.Instance()
	if err != nil {
		return models.Instance{}, fmt.Errorf("decode shared instance: %w", err)
	}
	instance.ID, instance.OwnerID = "", ""

	var saved models.Instance
	if err = channel.Call(ctx, s.channel, models.ChannelInstanceSave, &saved, instance); err != nil {
		return models.Instance{}, err
	}

	if !s.gateway.AcceptSharedInstance(ctx, shareID) {
		logger.FromContext(ctx).Warn().
			Str("func", "socialService.AcceptShare").
			Str("share_id", shareID).
			Msg("instance saved but share is still pending")
	}
	return saved, nil
}

func (s *socialService) Watch(ctx context.Context, session models.Session, onChange func()) (func(), error) {
	if !session.IsCloudLinked() || s.realtime == nil {
		return nil, ErrCloudUnavailable
	}

	received := "receiver_id=eq." + session.UserID
	requested := "requester_id=eq." + session.UserID
	handler := func(adapter.Change) { onChange() }

	subscriptions := []struct{ table, filter string }{
		{"friendships", received},
		{"friendships", requested},
		{"shared_instances", received},
	}

	stops := make([]func(), 0, len(subscriptions))
	stopAll := func() {
		for _, stop := range stops {
			stop()
		}
	}

	for _, sub := range subscriptions {
		stop, err := s.realtime.Subscribe(ctx, sub.table, sub.filter, handler)
		if err != nil {
			stopAll()
			return nil, fmt.Errorf("watch %s (%s): %w", sub.table, sub.filter, err)
		}
		stops = append(stops, stop)
	}

	return stopAll, nil
}
