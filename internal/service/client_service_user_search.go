// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/debounce"
	"github.com/MKhiriev/blocklauncher/internal/gateway"
	"github.com/MKhiriev/blocklauncher/models"
)

// SearchResult is what the search box shows for Query.
type SearchResult = debounce.Result[string, []models.Profile]

type userSearch struct {
	dispatcher *debounce.Dispatcher[string, []models.Profile]
}

// NewUserSearch returns a [UserSearch] looking up usernames for session
// once input has been quiet for delay. Only the result of the latest query
// reaches apply. Blank queries answer with no profiles without a lookup.
func NewUserSearch(ctx context.Context, gw gateway.SocialGateway, session models.Session, delay time.Duration, apply func(SearchResult)) UserSearch {
	query := func(ctx context.Context, q string) ([]models.Profile, error) {
		q = strings.TrimSpace(q)
		if q == "" || !session.IsCloudLinked() {
			return nil, nil
		}
		return gw.SearchUsers(ctx, q, session.UserID), nil
	}

	return &userSearch{dispatcher: debounce.New(ctx, delay, query, apply)}
}

func (s *userSearch) Input(query string) {
	s.dispatcher.Input(query)
}

func (s *userSearch) Close() {
	s.dispatcher.Close()
}
