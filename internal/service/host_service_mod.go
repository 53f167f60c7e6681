// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/store"
	"github.com/MKhiriev/blocklauncher/models"
)

type hostModService struct {
	modRepo store.ModRepository
	logger  *logger.Logger
}

// NewHostModService returns the [HostModService].
func NewHostModService(modRepo store.ModRepository, logger *logger.Logger) HostModService {
	return &hostModService{modRepo: modRepo, logger: logger}
}

func (s *hostModService) List(ctx context.Context, instanceName string) ([]models.Mod, error) {
	if instanceName == "" {
		return nil, ErrInstanceNameRequired
	}
	return s.modRepo.List(ctx, instanceName)
}

func (s *hostModService) Toggle(ctx context.Context, instanceName, fileName string, enabled bool) error {
	if instanceName == "" {
		return ErrInstanceNameRequired
	}
	if err := s.modRepo.SetEnabled(ctx, instanceName, fileName, enabled); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "hostModService.Toggle").
		Str("instance", instanceName).
		Str("file", fileName).
		Bool("enabled", enabled).
		Msg("mod toggled")
	return nil
}

func (s *hostModService) Delete(ctx context.Context, instanceName, fileName string) error {
	if instanceName == "" {
		return ErrInstanceNameRequired
	}
	return s.modRepo.Delete(ctx, instanceName, fileName)
}
