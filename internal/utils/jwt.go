// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the fields the launcher reads from a backend access token.
type SessionClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the token is expired at now. Tokens without an
// exp claim never expire.
func (c SessionClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseSessionClaims reads the claims of a backend access token without
// verifying its signature. The launcher never holds the signing key; the
// backend verifies tokens on every request.
func ParseSessionClaims(tokenString string) (SessionClaims, error) {
	if tokenString == "" {
		return SessionClaims{}, errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error parsing session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error getting subject from token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error getting expiration from token: %w", err)
	}

	out := SessionClaims{Subject: sub}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}

	return out, nil
}

