// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/store"
	"github.com/MKhiriev/blocklauncher/models"
)

type hostConfigService struct {
	configRepo   store.ConfigRepository
	instanceRepo store.InstanceRepository
	modRepo      store.ModRepository
	launcher     config.Launcher
	logger       *logger.Logger
}

// NewHostConfigService returns the [HostConfigService] backed by the config
// repository. The instance and mod repositories are only touched by a full
// app reset.
func NewHostConfigService(
	configRepo store.ConfigRepository,
	instanceRepo store.InstanceRepository,
	modRepo store.ModRepository,
	launcher config.Launcher,
	logger *logger.Logger,
) HostConfigService {
	return &hostConfigService{
		configRepo:   configRepo,
		instanceRepo: instanceRepo,
		modRepo:      modRepo,
		launcher:     launcher,
		logger:       logger,
	}
}

func (s *hostConfigService) defaults() models.Config {
	cfg := models.DefaultConfig()
	cfg.GamePath = s.launcher.GamePath
	if cfg.GamePath != "" {
		cfg.InstancesPath = filepath.Join(cfg.GamePath, "instances")
	}
	return cfg
}

func (s *hostConfigService) Get(ctx context.Context) (models.Config, error) {
	log := logger.FromContext(ctx)

	entries, err := s.configRepo.GetAll(ctx)
	if err != nil {
		return models.Config{}, fmt.Errorf("error reading config: %w", err)
	}

	cfg := s.defaults()
	if len(entries) == 0 {
		if err = s.persist(ctx, cfg); err != nil {
			return models.Config{}, err
		}
		log.Info().Str("func", "hostConfigService.Get").Msg("first run, default config written")
		return cfg, nil
	}

	for key, raw := range entries {
		if setErr := cfg.SetField(key, raw); setErr != nil {
			log.Warn().Err(setErr).
				Str("func", "hostConfigService.Get").
				Str("key", key).
				Msg("skipping stored config entry")
		}
	}

	return cfg, nil
}

func (s *hostConfigService) Set(ctx context.Context, key string, raw json.RawMessage) (models.Config, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.Config{}, err
	}

	next := current.Clone()
	if err = next.SetField(key, raw); err != nil {
		return models.Config{}, err
	}
	if err = next.Validate(); err != nil {
		return models.Config{}, err
	}

	if err = s.store(ctx, next, key); err != nil {
		return models.Config{}, err
	}

	return next, nil
}

func (s *hostConfigService) SetGamePath(ctx context.Context, path string) (models.Config, error) {
	if path == "" {
		return models.Config{}, ErrEmptyPath
	}

	raw, err := json.Marshal(path)
	if err != nil {
		return models.Config{}, err
	}

	return s.Set(ctx, models.KeyGamePath, raw)
}

func (s *hostConfigService) SelectJava(ctx context.Context, version, path string) (models.Config, error) {
	if version == "" || path == "" {
		return models.Config{}, ErrEmptyPath
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return models.Config{}, fmt.Errorf("%w: %s", ErrJavaRuntimeNotFound, path)
	}

	current, err := s.Get(ctx)
	if err != nil {
		return models.Config{}, err
	}

	next := current.Clone()
	next.JavaPaths[version] = path

	if err = s.store(ctx, next, models.KeyJavaPaths); err != nil {
		return models.Config{}, err
	}

	return next, nil
}

func (s *hostConfigService) ResetJava(ctx context.Context, version string) (models.Config, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.Config{}, err
	}

	next := current.Clone()
	if version == "" {
		next.JavaPaths = map[string]string{}
	} else {
		delete(next.JavaPaths, version)
	}

	if err = s.store(ctx, next, models.KeyJavaPaths); err != nil {
		return models.Config{}, err
	}

	return next, nil
}

func (s *hostConfigService) ResetApp(ctx context.Context, mode string) error {
	log := logger.FromContext(ctx)

	switch mode {
	case models.ResetSettings:
		if err := s.configRepo.Clear(ctx); err != nil {
			return fmt.Errorf("error clearing config: %w", err)
		}
	case models.ResetFull:
		if err := s.configRepo.Clear(ctx); err != nil {
			return fmt.Errorf("error clearing config: %w", err)
		}
		if err := s.modRepo.Clear(ctx); err != nil {
			return fmt.Errorf("error clearing mods: %w", err)
		}
		if err := s.instanceRepo.Clear(ctx); err != nil {
			return fmt.Errorf("error clearing instances: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidResetMode, mode)
	}

	log.Info().Str("func", "hostConfigService.ResetApp").Str("mode", mode).Msg("app reset")
	return nil
}

// store writes the value of key from cfg.
func (s *hostConfigService) store(ctx context.Context, cfg models.Config, key string) error {
	value, _ := cfg.Field(key)
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", key, err)
	}

	if err = s.configRepo.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("error saving %s: %w", key, err)
	}

	return nil
}

// persist writes every field of cfg in one transaction.
func (s *hostConfigService) persist(ctx context.Context, cfg models.Config) error {
	keys := []string{
		models.KeyMinRAM,
		models.KeyMaxRAM,
		models.KeyLaunchBehavior,
		models.KeyShowConsole,
		models.KeyGamePath,
		models.KeyInstancesPath,
		models.KeyJavaPaths,
	}

	entries := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		value, _ := cfg.Field(key)
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", key, err)
		}
		entries[key] = raw
	}

	if err := s.configRepo.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("error writing default config: %w", err)
	}

	return nil
}
