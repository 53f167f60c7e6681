// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SharedInstance is a one-time directed transfer of instance metadata from
// SenderID to ReceiverID. It moves from pending to accepted and nowhere else.
type SharedInstance struct {
	ID           string           `json:"id"`
	SenderID     string           `json:"sender_id"`
	ReceiverID   string           `json:"receiver_id"`
	InstanceName string           `json:"instance_name"`
	InstanceData json.RawMessage  `json:"instance_data,omitempty"`
	Status       FriendshipStatus `json:"status"`
	CreatedAt    *time.Time       `json:"created_at,omitempty"`

	Sender *Profile `json:"sender,omitempty"`
}

// Instance decodes the embedded instance metadata.
func (s SharedInstance) Instance() (Instance, error) {
	var instance Instance
	if len(s.InstanceData) == 0 {
		return Instance{Name: s.InstanceName}, nil
	}
	if err := json.Unmarshal(s.InstanceData, &instance); err != nil {
		return Instance{}, err
	}
	if instance.Name == "" {
		instance.Name = s.InstanceName
	}
	return instance, nil
}
