// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/stretchr/testify/require"
)

const testAnonKey = "anon-key"

// newTestClient returns a client pointed at a test server running handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(config.Backend{URL: srv.URL, AnonKey: testAnonKey, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
