// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/utils"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

type fakeHost struct {
	invoke func(w http.ResponseWriter, channel string, req models.InvokeRequest)
	events chan models.Event
}

func (f *fakeHost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/invoke/"):
		var req models.InvokeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.invoke(w, strings.TrimPrefix(r.URL.Path, "/api/invoke/"), req)
	case r.URL.Path == "/api/events":
		upgrader := websocket.Upgrader{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for ev := range f.events {
			if conn.WriteJSON(ev) != nil {
				return
			}
		}
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestChannel(t *testing.T, host *fakeHost) *HTTPChannel {
	t.Helper()
	srv := httptest.NewServer(host)
	t.Cleanup(srv.Close)

	ch, err := NewHTTPChannel(config.Host{Address: srv.URL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return ch
}

func writeResult(w http.ResponseWriter, status int, result models.ChannelResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}

// ── NewHTTPChannel ───────────────────────────────────────────────────────────

func TestNewHTTPChannel_Addresses(t *testing.T) {
	ch, err := NewHTTPChannel(config.Host{Address: "127.0.0.1:7878"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:7878/api/events", ch.eventsURL)

	ch, err = NewHTTPChannel(config.Host{Address: "https://launcher.local/"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "wss://launcher.local/api/events", ch.eventsURL)

	_, err = NewHTTPChannel(config.Host{Address: "  "}, logger.Nop())
	assert.Error(t, err)
}

// ── Invoke / Call ────────────────────────────────────────────────────────────

func TestInvoke_EncodesArgsAndTraceID(t *testing.T) {
	var gotTrace atomic.Value
	host := &fakeHost{invoke: func(w http.ResponseWriter, channel string, req models.InvokeRequest) {
		assert.Equal(t, models.ChannelModsToggle, channel)
		if !assert.Len(t, req.Args, 3) {
			return
		}
		assert.JSONEq(t, `"Fabric"`, string(req.Args[0]))
		assert.JSONEq(t, `false`, string(req.Args[2]))
		writeResult(w, http.StatusOK, models.ChannelResult{Success: true})
	}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace.Store(r.Header.Get("X-Trace-ID"))
		host.ServeHTTP(w, r)
	}))
	defer srv.Close()
	ch, err := NewHTTPChannel(config.Host{Address: srv.URL}, logger.Nop())
	require.NoError(t, err)

	ctx := utils.WithTraceID(context.Background(), "trace-42")
	result, err := ch.Invoke(ctx, models.ChannelModsToggle, "Fabric", "sodium.jar", false)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "trace-42", gotTrace.Load())
}

func TestCall_DecodesData(t *testing.T) {
	ch := newTestChannel(t, &fakeHost{invoke: func(w http.ResponseWriter, _ string, _ models.InvokeRequest) {
		writeResult(w, http.StatusOK, models.ChannelResult{Success: true, Data: json.RawMessage(`{"minRam":2048,"maxRam":4096}`)})
	}})

	var cfg models.Config
	err := Call(context.Background(), ch, models.ChannelConfigGet, &cfg)

	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.MinRAM)
	assert.Equal(t, 4096, cfg.MaxRAM)
}

func TestCall_FailureShapes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		result  *models.ChannelResult
		wantErr error
		wantMsg string
	}{
		{
			name:    "operation failed",
			status:  http.StatusBadRequest,
			result:  &models.ChannelResult{Error: "invalid ram bounds: min=8192 max=4096"},
			wantErr: ErrOperationFailed,
			wantMsg: "invalid ram bounds",
		},
		{
			name:    "unknown channel",
			status:  http.StatusNotFound,
			result:  &models.ChannelResult{Error: `unknown channel "launch:start"`},
			wantErr: ErrUnknownChannel,
		},
		{
			name:    "not a channel result",
			status:  http.StatusBadGateway,
			wantErr: ErrHostUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := newTestChannel(t, &fakeHost{invoke: func(w http.ResponseWriter, _ string, _ models.InvokeRequest) {
				if tt.result == nil {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("<html>bad gateway</html>"))
					return
				}
				writeResult(w, tt.status, *tt.result)
			}})

			err := Call(context.Background(), ch, "config:set", nil, "minRam", 8192)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestInvoke_HostDown(t *testing.T) {
	ch, err := NewHTTPChannel(config.Host{Address: "127.0.0.1:1", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = ch.Invoke(context.Background(), models.ChannelConfigGet)

	assert.ErrorIs(t, err, ErrHostUnavailable)
}

// ── On / Listen ──────────────────────────────────────────────────────────────

func TestListen_DispatchesToSubscribedHandlers(t *testing.T) {
	host := &fakeHost{events: make(chan models.Event, 4)}
	ch := newTestChannel(t, host)

	received := make(chan models.ProgressEvent, 4)
	var otherCalls atomic.Int32
	unsubscribe := ch.On(models.EventInstanceImportProgress, func(ev models.ProgressEvent) {
		received <- ev
	})
	defer unsubscribe()
	ch.On(models.EventLaunchProgress, func(models.ProgressEvent) { otherCalls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ch.Listen(ctx) }()

	host.events <- models.Event{Name: models.EventInstanceImportProgress, Payload: models.ProgressEvent{Status: "Imported 1.21", Progress: 0.5}}

	select {
	case ev := <-received:
		assert.Equal(t, "Imported 1.21", ev.Status)
		assert.InDelta(t, 0.5, ev.Progress, 0.0001)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
	assert.Zero(t, otherCalls.Load())

	cancel()
	close(host.events)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Listen did not return")
	}
}

func TestOn_UnsubscribeRemovesHandler(t *testing.T) {
	ch, err := NewHTTPChannel(config.Host{Address: "127.0.0.1:7878"}, logger.Nop())
	require.NoError(t, err)

	var calls atomic.Int32
	unsubscribe := ch.On(models.EventModsInstallProgress, func(models.ProgressEvent) { calls.Add(1) })

	ch.dispatch(models.Event{Name: models.EventModsInstallProgress})
	unsubscribe()
	unsubscribe()
	ch.dispatch(models.Event{Name: models.EventModsInstallProgress})

	assert.Equal(t, int32(1), calls.Load())
	assert.Empty(t, ch.handlers)
}
