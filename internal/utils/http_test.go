// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/blocklauncher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── WriteJSON ──

func TestWriteJSON_ChannelResult(t *testing.T) {
	w := httptest.NewRecorder()
	result := models.ChannelResult{Success: true, Data: json.RawMessage(`{"minRam":1024}`)}

	n, err := WriteJSON(w, result, http.StatusOK)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"minRam":1024}}`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.ChannelResult{Error: "unknown channel"}, http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}

// ── DecodeJSON ──

func TestDecodeJSON_InvokeRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/invoke/config:set", strings.NewReader(`{"args":["maxRam",8192]}`))

	var req models.InvokeRequest
	require.NoError(t, DecodeJSON(r, &req))

	require.Len(t, req.Args, 2)
	assert.JSONEq(t, `"maxRam"`, string(req.Args[0]))
	assert.JSONEq(t, `8192`, string(req.Args[1]))
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/invoke/config:get", nil)

	var req models.InvokeRequest
	require.NoError(t, DecodeJSON(r, &req))
	assert.Empty(t, req.Args)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/invoke/config:get", strings.NewReader(`{"args":`))

	var req models.InvokeRequest
	assert.Error(t, DecodeJSON(r, &req))
}
