// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/utils"
	"github.com/go-resty/resty/v2"
)

// Client is the HTTP connection to the backend shared by the table, auth and
// storage clients.
type Client struct {
	http    *utils.HTTPClient
	baseURL string
	anonKey string
	timeout time.Duration

	mu          sync.RWMutex
	accessToken string

	logger *logger.Logger
}

// NewClient returns a client for cfg.URL authenticated with cfg.AnonKey
// until a session is established.
func NewClient(cfg config.Backend, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	return &Client{
		http:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL: baseURL,
		anonKey: cfg.AnonKey,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetAccessToken makes token the bearer of later requests.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = strings.TrimSpace(token)
}

// AccessToken returns the current bearer token, empty before a session.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// request returns a request carrying the project key and the bearer token,
// bounded by the configured timeout. The caller must call cancel.
func (c *Client) request(ctx context.Context) (*resty.Request, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	bearer := c.AccessToken()
	if bearer == "" {
		bearer = c.anonKey
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetAuthToken(bearer)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}

	return req, cancel
}
