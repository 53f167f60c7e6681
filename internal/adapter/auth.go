// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/utils"
	"github.com/MKhiriev/blocklauncher/models"
)

const tokenPath = "/auth/v1/token"

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Username string `json:"username"`
		} `json:"user_metadata"`
	} `json:"user"`
}

type authClient struct {
	*Client

	mu      sync.RWMutex
	session *models.Session
	now     func() time.Time
}

// NewAuthClient returns the [AuthClient] of c.
func NewAuthClient(c *Client) AuthClient {
	return &authClient{Client: c, now: time.Now}
}

func (a *authClient) ExchangeSession(ctx context.Context, refreshToken string) (models.Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return models.Session{}, ErrNoSession
	}

	var token tokenResponse

	req, cancel := a.request(ctx)
	defer cancel()

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		SetResult(&token).
		Post(tokenPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := a.sessionFrom(token)
	if err != nil {
		return models.Session{}, err
	}

	a.SetAccessToken(session.AccessToken)
	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	a.logger.Info().
		Str("func", "authClient.ExchangeSession").
		Str("user_id", session.UserID).
		Time("expires_at", session.ExpiresAt).
		Msg("backend session established")

	return session, nil
}

// sessionFrom builds the session, falling back to the access token claims
// for the user id and expiry.
func (a *authClient) sessionFrom(token tokenResponse) (models.Session, error) {
	if token.AccessToken == "" {
		return models.Session{}, fmt.Errorf("%w: empty access token", ErrUnauthorized)
	}

	session := models.Session{
		AccountType:  models.AccountCloud,
		UserID:       token.User.ID,
		Username:     token.User.UserMetadata.Username,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}

	switch {
	case token.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(token.ExpiresAt, 0)
	case token.ExpiresIn > 0:
		session.ExpiresAt = a.now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	if session.UserID == "" || session.ExpiresAt.IsZero() {
		claims, err := utils.ParseSessionClaims(token.AccessToken)
		if err != nil {
			return models.Session{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		if session.UserID == "" {
			session.UserID = claims.Subject
		}
		if session.ExpiresAt.IsZero() {
			session.ExpiresAt = claims.ExpiresAt
		}
	}

	if session.Username == "" {
		session.Username, _, _ = strings.Cut(token.User.Email, "@")
	}

	return session, nil
}

func (a *authClient) Session() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return models.Session{}, false
	}
	return *a.session, true
}
