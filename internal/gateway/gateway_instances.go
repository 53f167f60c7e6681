// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

const instanceConflictKey = "owner_id,name"

func (g *remoteGateway) UpsertInstance(ctx context.Context, instance models.Instance, ownerID string) bool {
	if ownerID == "" || instance.Name == "" {
		return false
	}

	row := models.NewInstanceRow(instance, ownerID, g.now().UTC())
	if err := g.tables.Upsert(ctx, tableInstances, []models.InstanceRow{row}, instanceConflictKey); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.UpsertInstance").
			Str("owner_id", ownerID).
			Str("instance", instance.Name).
			Msg("failed to upsert instance")
		return false
	}
	return true
}

func (g *remoteGateway) FetchInstances(ctx context.Context, ownerID string) []models.Instance {
	if ownerID == "" {
		return nil
	}

	var rows []models.InstanceRow
	if err := g.tables.Select(ctx, tableInstances, adapter.NewQuery("*").Eq("owner_id", ownerID), &rows); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.FetchInstances").
			Str("owner_id", ownerID).
			Msg("failed to fetch instances")
		return nil
	}

	instances := make([]models.Instance, 0, len(rows))
	for _, row := range rows {
		instances = append(instances, row.Instance())
	}
	return instances
}

func (g *remoteGateway) DeleteInstance(ctx context.Context, name, ownerID string) {
	if ownerID == "" || name == "" {
		return
	}

	q := adapter.NewQuery("*").Eq("owner_id", ownerID).Eq("name", name)
	if err := g.tables.Delete(ctx, tableInstances, q); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.DeleteInstance").
			Str("owner_id", ownerID).
			Str("instance", name).
			Msg("failed to delete instance")
	}
}
