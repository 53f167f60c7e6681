// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

func (g *remoteGateway) ShareInstance(ctx context.Context, instance models.Instance, senderID, receiverID string) bool {
	if senderID == "" || receiverID == "" || instance.Name == "" {
		return false
	}
	log := logger.FromContext(ctx)

	// Local ids and owners mean nothing on the receiving device.
	instance.ID, instance.OwnerID = "", ""
	data, err := json.Marshal(instance)
	if err != nil {
		log.Err(err).Str("func", "remoteGateway.ShareInstance").Msg("failed to encode instance")
		return false
	}

	row := shareInsert{
		SenderID:     senderID,
		ReceiverID:   receiverID,
		InstanceName: instance.Name,
		InstanceData: data,
		Status:       models.StatusPending,
	}
	if err = g.tables.Insert(ctx, tableSharedInstances, row); err != nil {
		log.Err(err).
			Str("func", "remoteGateway.ShareInstance").
			Str("sender_id", senderID).
			Str("receiver_id", receiverID).
			Str("instance", instance.Name).
			Msg("failed to share instance")
		return false
	}
	return true
}

func (g *remoteGateway) GetSharedInstances(ctx context.Context, userID string) []models.SharedInstance {
	if userID == "" {
		return nil
	}
	log := logger.FromContext(ctx)

	q := adapter.NewQuery(shareColumns).
		Eq("receiver_id", userID).
		Eq("status", models.StatusPending).
		Order("created_at", false)

	var rows []shareRow
	if err := g.tables.Select(ctx, tableSharedInstances, q, &rows); err != nil {
		log.Err(err).Str("func", "remoteGateway.GetSharedInstances").Str("user_id", userID).Msg("failed to load shared instances")
		return nil
	}

	shares := make([]models.SharedInstance, 0, len(rows))
	for _, row := range rows {
		s, err := row.share()
		if err != nil {
			log.Warn().Err(err).Str("func", "remoteGateway.GetSharedInstances").Str("share_id", row.ID).Msg("skipping share with malformed sender")
			continue
		}
		shares = append(shares, s)
	}
	return shares
}

func (g *remoteGateway) AcceptSharedInstance(ctx context.Context, shareID string) bool {
	if shareID == "" {
		return false
	}

	patch := statusPatch{Status: models.StatusAccepted, UpdatedAt: g.now().UTC()}
	if err := g.tables.Update(ctx, tableSharedInstances, adapter.NewQuery("*").Eq("id", shareID), patch); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteGateway.AcceptSharedInstance").
			Str("share_id", shareID).
			Msg("failed to accept shared instance")
		return false
	}
	return true
}
