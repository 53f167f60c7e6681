// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccountType distinguishes how the active account authenticated.
type AccountType string

const (
	// AccountOffline is a local-only account with no backend identity.
	AccountOffline AccountType = "offline"
	// AccountMicrosoft is a game account without a linked backend identity.
	AccountMicrosoft AccountType = "microsoft"
	// AccountCloud is an account linked to the hosted backend.
	AccountCloud AccountType = "cloud"
)

// Session is the active account context threaded explicitly through the
// reconciler, gateway callers and services.
type Session struct {
	AccountType  AccountType `json:"account_type"`
	UserID       string      `json:"user_id,omitempty"`
	Username     string      `json:"username,omitempty"`
	AccessToken  string      `json:"access_token,omitempty"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time   `json:"expires_at,omitempty"`
}

// OfflineSession returns a session without any backend identity.
func OfflineSession(username string) Session {
	return Session{AccountType: AccountOffline, Username: username}
}

// IsCloudLinked reports whether cloud mirroring applies to this session.
func (s Session) IsCloudLinked() bool {
	return s.AccountType == AccountCloud && s.UserID != ""
}

// Active reports whether the session carries an unexpired access token at now.
func (s Session) Active(now time.Time) bool {
	if !s.IsCloudLinked() || s.AccessToken == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
