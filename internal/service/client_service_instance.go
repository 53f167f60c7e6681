// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/blocklauncher/internal/channel"
	"github.com/MKhiriev/blocklauncher/internal/gateway"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/optimistic"
	"github.com/MKhiriev/blocklauncher/internal/utils"
	"github.com/MKhiriev/blocklauncher/internal/validators"
	"github.com/MKhiriev/blocklauncher/models"
)

type instanceService struct {
	channel   channel.Channel
	gateway   gateway.InstanceGateway
	validator validators.Validator
	logger    *logger.Logger

	list *optimistic.List[string, models.Instance]

	mu sync.Mutex
	// pushedHashes holds the fingerprint of the last complete push per user id.
	pushedHashes map[string]string
}

// NewInstanceService returns the launcher [InstanceService].
func NewInstanceService(ch channel.Channel, gw gateway.InstanceGateway, validator validators.Validator, logger *logger.Logger) InstanceService {
	return &instanceService{
		channel:      ch,
		gateway:      gw,
		validator:    validator,
		logger:       logger,
		list:         optimistic.NewList(models.Instance.Key, nil),
		pushedHashes: map[string]string{},
	}
}

func (s *instanceService) fetch(ctx context.Context) ([]models.Instance, error) {
	var instances []models.Instance
	if err := channel.Call(ctx, s.channel, models.ChannelInstanceList, &instances); err != nil {
		return nil, err
	}
	return instances, nil
}

func (s *instanceService) List(ctx context.Context) ([]models.Instance, error) {
	instances, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.list.Replace(instances)
	return instances, nil
}

func (s *instanceService) Items() []models.Instance {
	return s.list.Items()
}

func (s *instanceService) Delete(ctx context.Context, session models.Session, name string) (<-chan error, error) {
	return s.list.Remove(ctx, name, func(ctx context.Context, instance models.Instance) error {
		if err := channel.Call(ctx, s.channel, models.ChannelInstanceDelete, nil, instance.Name); err != nil {
			return err
		}
		if session.IsCloudLinked() {
			s.gateway.DeleteInstance(ctx, instance.Name, session.UserID)
		}
		return nil
	}, s.fetch)
}

func (s *instanceService) Import(ctx context.Context, versionIDs []string, onProgress func(models.ProgressEvent)) ([]models.Instance, error) {
	if err := s.validator.Validate(ctx, models.ImportRequest{VersionIDs: versionIDs}); err != nil {
		return nil, err
	}

	if onProgress != nil {
		unsubscribe := s.channel.On(models.EventInstanceImportProgress, onProgress)
		defer unsubscribe()
	}

	var created []models.Instance
	if err := channel.Call(ctx, s.channel, models.ChannelInstanceImport, &created, versionIDs); err != nil {
		return nil, err
	}

	if _, err := s.List(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "instanceService.Import").
			Msg("failed to reload instances after import")
	}
	return created, nil
}

func (s *instanceService) PushToCloud(ctx context.Context, session models.Session) (int, error) {
	if !session.IsCloudLinked() {
		return 0, ErrCloudUnavailable
	}
	log := logger.FromContext(ctx)

	instances, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}

	encoded, err := json.Marshal(instances)
	if err != nil {
		return 0, fmt.Errorf("encode instances: %w", err)
	}
	hash := utils.Fingerprint(encoded)

	s.mu.Lock()
	unchanged := hash == s.pushedHashes[session.UserID]
	s.mu.Unlock()
	if unchanged {
		return 0, nil
	}

	pushed := 0
	for _, instance := range instances {
		if s.gateway.UpsertInstance(ctx, instance, session.UserID) {
			pushed++
		}
	}

	if pushed == len(instances) {
		s.mu.Lock()
		s.pushedHashes[session.UserID] = hash
		s.mu.Unlock()
	} else {
		log.Warn().
			Str("func", "instanceService.PushToCloud").
			Int("pushed", pushed).
			Int("total", len(instances)).
			Msg("some instances were not pushed")
	}

	return pushed, nil
}

func (s *instanceService) PullFromCloud(ctx context.Context, session models.Session) ([]models.Instance, error) {
	if !session.IsCloudLinked() {
		return nil, ErrCloudUnavailable
	}

	local, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(local))
	for _, instance := range local {
		known[instance.Name] = struct{}{}
	}

	var saved []models.Instance
	for _, remote := range s.gateway.FetchInstances(ctx, session.UserID) {
		if _, ok := known[remote.Name]; ok {
			continue
		}
		remote.ID, remote.OwnerID = "", ""

		var instance models.Instance
		if err = channel.Call(ctx, s.channel, models.ChannelInstanceSave, &instance, remote); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "instanceService.PullFromCloud").
				Str("instance", remote.Name).
				Msg("failed to save cloud instance")
			continue
		}
		saved = append(saved, instance)
	}

	if len(saved) > 0 {
		s.list.Replace(append(local, saved...))
	}
	return saved, nil
}
