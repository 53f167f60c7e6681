// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"encoding/json"
	"time"

	"github.com/MKhiriev/blocklauncher/models"
)

// friendshipRow is a friendships row with its joined profiles left raw.
type friendshipRow struct {
	models.Friendship
	Requester json.RawMessage `json:"requester,omitempty"`
	Receiver  json.RawMessage `json:"receiver,omitempty"`
}

func (r friendshipRow) friendship() (models.Friendship, error) {
	f := r.Friendship

	requester, err := unwrapSingular[models.Profile](r.Requester)
	if err != nil {
		return models.Friendship{}, err
	}
	receiver, err := unwrapSingular[models.Profile](r.Receiver)
	if err != nil {
		return models.Friendship{}, err
	}

	f.Requester, f.Receiver = requester, receiver
	return f, nil
}

type shareRow struct {
	models.SharedInstance
	Sender json.RawMessage `json:"sender,omitempty"`
}

func (r shareRow) share() (models.SharedInstance, error) {
	s := r.SharedInstance

	sender, err := unwrapSingular[models.Profile](r.Sender)
	if err != nil {
		return models.SharedInstance{}, err
	}

	s.Sender = sender
	return s, nil
}

type friendshipInsert struct {
	RequesterID string                  `json:"requester_id"`
	ReceiverID  string                  `json:"receiver_id"`
	Status      models.FriendshipStatus `json:"status"`
}

type shareInsert struct {
	SenderID     string                  `json:"sender_id"`
	ReceiverID   string                  `json:"receiver_id"`
	InstanceName string                  `json:"instance_name"`
	InstanceData json.RawMessage         `json:"instance_data"`
	Status       models.FriendshipStatus `json:"status"`
}

type statusPatch struct {
	Status    models.FriendshipStatus `json:"status"`
	UpdatedAt time.Time               `json:"updated_at"`
}
