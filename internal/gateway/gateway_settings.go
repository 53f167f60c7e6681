// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

func (g *remoteGateway) SaveSyncableSettings(ctx context.Context, cfg models.Config, ownerID string) bool {
	if ownerID == "" {
		return false
	}

	row := models.NewSettingsRow(ownerID, models.ProjectSettings(cfg), g.now().UTC())
	if err := g.tables.Upsert(ctx, tableSettings, row, "user_id"); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.SaveSyncableSettings").
			Str("owner_id", ownerID).
			Msg("failed to save syncable settings")
		return false
	}
	return true
}

func (g *remoteGateway) FetchSyncableSettings(ctx context.Context, ownerID string) *models.SyncableSettings {
	if ownerID == "" {
		return nil
	}

	var row models.SettingsRow
	err := g.tables.SelectOne(ctx, tableSettings, adapter.NewQuery("*").Eq("user_id", ownerID), &row)
	switch {
	case errors.Is(err, adapter.ErrNoRows):
		return nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.FetchSyncableSettings").
			Str("owner_id", ownerID).
			Msg("failed to fetch syncable settings, continuing without them")
		return nil
	}

	settings := row.Settings()
	return &settings
}
