// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/blocklauncher/internal/channel"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/optimistic"
	"github.com/MKhiriev/blocklauncher/models"
)

type modService struct {
	channel channel.Channel
	logger  *logger.Logger

	list *optimistic.List[string, models.Mod]

	mu       sync.RWMutex
	instance string
}

// NewModService returns the launcher [ModService]. No instance is loaded
// until Load is called.
func NewModService(ch channel.Channel, logger *logger.Logger) ModService {
	return &modService{
		channel: ch,
		logger:  logger,
		list:    optimistic.NewList(models.Mod.Key, nil),
	}
}

func (s *modService) fetch(instanceName string) optimistic.Loader[models.Mod] {
	return func(ctx context.Context) ([]models.Mod, error) {
		var mods []models.Mod
		if err := channel.Call(ctx, s.channel, models.ChannelModsList, &mods, instanceName); err != nil {
			return nil, err
		}
		return mods, nil
	}
}

func (s *modService) Load(ctx context.Context, instanceName string) ([]models.Mod, error) {
	mods, err := s.fetch(instanceName)(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.instance = instanceName
	s.mu.Unlock()

	s.list.Replace(mods)
	return mods, nil
}

func (s *modService) Items() []models.Mod {
	return s.list.Items()
}

func (s *modService) OnChange(fn func([]models.Mod)) {
	s.list.OnChange(fn)
}

func (s *modService) current() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.instance == "" {
		return "", ErrNoInstanceLoaded
	}
	return s.instance, nil
}

func (s *modService) Toggle(ctx context.Context, fileName string) (<-chan error, error) {
	instanceName, err := s.current()
	if err != nil {
		return nil, err
	}

	flip := func(m models.Mod) models.Mod {
		m.Enabled = !m.Enabled
		return m
	}

	return s.list.Toggle(ctx, fileName, flip, func(ctx context.Context, m models.Mod) error {
		return channel.Call(ctx, s.channel, models.ChannelModsToggle, nil, instanceName, m.FileName, m.Enabled)
	})
}

func (s *modService) Delete(ctx context.Context, fileName string) (<-chan error, error) {
	instanceName, err := s.current()
	if err != nil {
		return nil, err
	}

	return s.list.Remove(ctx, fileName, func(ctx context.Context, m models.Mod) error {
		return channel.Call(ctx, s.channel, models.ChannelModsDelete, nil, instanceName, m.FileName)
	}, s.fetch(instanceName))
}
