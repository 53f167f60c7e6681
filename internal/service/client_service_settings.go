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
	"github.com/MKhiriev/blocklauncher/internal/workers"
	"github.com/MKhiriev/blocklauncher/models"
)

type settingsReconciler struct {
	channel  channel.Channel
	gateway  gateway.SettingsGateway
	detached *workers.Detached
	logger   *logger.Logger

	mu     sync.RWMutex
	state  models.SettingsState
	config models.Config

	mirrorMu sync.Mutex
}

// NewSettingsReconciler returns a [SettingsReconciler] in the loading state.
// Cloud mirroring runs on detached.
func NewSettingsReconciler(ch channel.Channel, gw gateway.SettingsGateway, detached *workers.Detached, logger *logger.Logger) SettingsReconciler {
	return &settingsReconciler{
		channel:  ch,
		gateway:  gw,
		detached: detached,
		logger:   logger,
		state:    models.SettingsLoading,
	}
}

func (r *settingsReconciler) setState(state models.SettingsState) {
	r.mu.Lock()
	r.state = state
	r.mu.Unlock()
}

func (r *settingsReconciler) Load(ctx context.Context, session models.Session) (models.Config, error) {
	log := logger.FromContext(ctx)
	r.setState(models.SettingsLoading)

	var local models.Config
	if err := channel.Call(ctx, r.channel, models.ChannelConfigGet, &local); err != nil {
		log.Err(err).Str("func", "settingsReconciler.Load").Msg("failed to read config from host")
		r.setState(models.SettingsFailed)
		return models.Config{}, fmt.Errorf("%w: %w", ErrSettingsLoadFailed, err)
	}

	merged := local
	if session.IsCloudLinked() {
		r.setState(models.SettingsMerging)
		if remote := r.gateway.FetchSyncableSettings(ctx, session.UserID); remote != nil {
			merged = r.merge(ctx, local, *remote)
		}
	}

	r.mu.Lock()
	r.config = merged.Clone()
	r.state = models.SettingsReady
	r.mu.Unlock()

	return merged, nil
}

// merge overlays remote onto local and writes every overlaid key to the
// host. Keys the host refuses keep their local value. A refused key is
// retried once the others are written, since RAM bounds may only be valid
// in a particular order.
func (r *settingsReconciler) merge(ctx context.Context, local models.Config, remote models.SyncableSettings) models.Config {
	log := logger.FromContext(ctx)

	target := local.Clone()
	pending := remote.ApplyTo(&target)
	current := local

	for len(pending) > 0 {
		var refused []string
		for _, key := range pending {
			value, _ := target.Field(key)

			var updated models.Config
			if err := channel.Call(ctx, r.channel, models.ChannelConfigSet, &updated, key, value); err != nil {
				log.Warn().Err(err).
					Str("func", "settingsReconciler.merge").
					Str("key", key).
					Msg("host refused cloud setting")
				refused = append(refused, key)
				continue
			}
			current = updated
		}
		if len(refused) == len(pending) {
			break
		}
		pending = refused
	}

	return current
}

func (r *settingsReconciler) Update(ctx context.Context, session models.Session, key string, value any) (models.Config, error) {
	log := logger.FromContext(ctx)

	if r.State() != models.SettingsReady {
		return models.Config{}, ErrSettingsNotReady
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return models.Config{}, fmt.Errorf("encode %s: %w", key, err)
	}
	var decoded models.Config
	if err = decoded.SetField(key, raw); err != nil {
		return models.Config{}, err
	}

	// The host answers with its whole snapshot, which may predate a
	// concurrent edit of another key. Only key is taken from a reply.
	var stored models.Config
	if err = channel.Call(ctx, r.channel, models.ChannelConfigSet, &stored, key, json.RawMessage(raw)); err != nil {
		log.Err(err).
			Str("func", "settingsReconciler.Update").
			Str("key", key).
			Msg("host refused setting")
		return r.apply(key, raw), err
	}

	current := r.apply(key, raw)
	if session.IsCloudLinked() && models.IsSyncableKey(key) {
		r.mirror(ctx, session.UserID)
	}

	return current, nil
}

// apply writes one key onto the working config and returns a copy of it.
func (r *settingsReconciler) apply(key string, raw json.RawMessage) models.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.config.SetField(key, raw)
	return r.config.Clone()
}

// mirror saves the working config to the cloud in the background. Saves run
// one at a time and each sends the config current when it starts, so the
// last save always carries every accepted edit. The caller's cancellation
// does not reach the save.
func (r *settingsReconciler) mirror(ctx context.Context, userID string) {
	detachedCtx := context.WithoutCancel(ctx)
	r.detached.Go("settings.mirror", func() error {
		r.mirrorMu.Lock()
		defer r.mirrorMu.Unlock()

		cfg, _ := r.Snapshot()
		if !r.gateway.SaveSyncableSettings(detachedCtx, cfg, userID) {
			return fmt.Errorf("%w: settings of %s", errMirrorFailed, userID)
		}
		return nil
	})
}

func (r *settingsReconciler) Snapshot() (models.Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.Clone(), r.state == models.SettingsReady
}

func (r *settingsReconciler) State() models.SettingsState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}
