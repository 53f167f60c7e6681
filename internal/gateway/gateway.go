// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/logger"
)

// Backend tables.
const (
	tableInstances       = "instances"
	tableSettings        = "settings"
	tableProfiles        = "profiles"
	tableFriendships     = "friendships"
	tableSharedInstances = "shared_instances"
)

const (
	profileColumns    = "id, username, avatar_url, last_seen"
	friendshipColumns = "*, requester:profiles!requester_id(" + profileColumns + "), receiver:profiles!receiver_id(" + profileColumns + ")"
	shareColumns      = "*, sender:profiles!sender_id(" + profileColumns + ")"

	searchLimit = 10
)

type remoteGateway struct {
	tables adapter.TableClient
	logger *logger.Logger
	now    func() time.Time
}

// NewGateway returns the [Gateway] backed by tables.
func NewGateway(tables adapter.TableClient, logger *logger.Logger) Gateway {
	logger.Debug().Msg("creating remote data gateway")
	return &remoteGateway{
		tables: tables,
		logger: logger,
		now:    time.Now,
	}
}

// unwrapSingular decodes a joined relation that the backend returns either
// as an object or as an array holding at most one object. A missing, null or
// empty relation yields nil.
func unwrapSingular[T any](raw json.RawMessage) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, nil
		}
		return &items[0], nil
	}

	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
