// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/blocklauncher/internal/channel"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/stretchr/testify/require"
)

// callLog records host and cloud calls in the order they happen.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type hostHandler func(args []json.RawMessage) (any, error)

// fakeHost answers channel operations the way the host process does, with
// handlers registered per operation name.
type fakeHost struct {
	t   *testing.T
	log *callLog

	mu       sync.Mutex
	handlers map[string]hostHandler
	events   map[string][]channel.EventHandler
}

func newFakeHost(t *testing.T, log *callLog) *fakeHost {
	t.Helper()
	if log == nil {
		log = &callLog{}
	}
	return &fakeHost{
		t:        t,
		log:      log,
		handlers: map[string]hostHandler{},
		events:   map[string][]channel.EventHandler{},
	}
}

func (h *fakeHost) handle(name string, fn hostHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[name] = fn
}

func (h *fakeHost) Invoke(_ context.Context, name string, args ...any) (models.ChannelResult, error) {
	raw := make([]json.RawMessage, len(args))
	for i, arg := range args {
		b, err := json.Marshal(arg)
		require.NoError(h.t, err)
		raw[i] = b
	}

	if len(raw) > 0 {
		h.log.add("host:%s %s", name, raw[0])
	} else {
		h.log.add("host:%s", name)
	}

	h.mu.Lock()
	fn, ok := h.handlers[name]
	h.mu.Unlock()
	if !ok {
		return models.ChannelResult{Success: false, Error: "unknown channel"}, nil
	}

	out, err := fn(raw)
	if err != nil {
		return models.ChannelResult{Success: false, Error: err.Error()}, nil
	}
	data, err := json.Marshal(out)
	require.NoError(h.t, err)
	return models.ChannelResult{Success: true, Data: data}, nil
}

func (h *fakeHost) On(event string, handler channel.EventHandler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events[event] = append(h.events[event], handler)
	idx := len(h.events[event]) - 1

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.events[event][idx] = nil
	}
}

func (h *fakeHost) emit(event string, ev models.ProgressEvent) {
	h.mu.Lock()
	handlers := append([]channel.EventHandler(nil), h.events[event]...)
	h.mu.Unlock()
	for _, handler := range handlers {
		if handler != nil {
			handler(ev)
		}
	}
}

func (h *fakeHost) subscribers(event string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, handler := range h.events[event] {
		if handler != nil {
			n++
		}
	}
	return n
}

// configHost serves config:get and config:set over cfg and enforces the
// host's validation.
type configHost struct {
	*fakeHost

	cfgMu sync.Mutex
	cfg   models.Config
}

func newConfigHost(t *testing.T, log *callLog, cfg models.Config) *configHost {
	t.Helper()
	h := &configHost{fakeHost: newFakeHost(t, log), cfg: cfg.Clone()}

	h.handle(models.ChannelConfigGet, func([]json.RawMessage) (any, error) {
		h.cfgMu.Lock()
		defer h.cfgMu.Unlock()
		return h.cfg, nil
	})
	h.handle(models.ChannelConfigSet, func(args []json.RawMessage) (any, error) {
		if len(args) != 2 {
			return nil, errors.New("config:set takes a key and a value")
		}
		var key string
		if err := json.Unmarshal(args[0], &key); err != nil {
			return nil, err
		}

		h.cfgMu.Lock()
		defer h.cfgMu.Unlock()
		next := h.cfg.Clone()
		if err := next.SetField(key, args[1]); err != nil {
			return nil, err
		}
		if err := next.Validate(); err != nil {
			return nil, err
		}
		h.cfg = next
		return h.cfg, nil
	})
	return h
}

func (h *configHost) stored() models.Config {
	h.cfgMu.Lock()
	defer h.cfgMu.Unlock()
	return h.cfg.Clone()
}

func cloudSession() models.Session {
	return models.Session{
		AccountType: models.AccountCloud,
		UserID:      "user-1",
		Username:    "steve",
		AccessToken: "token",
	}
}

func intPtr(v int) *int { return &v }

func behaviorPtr(b models.LaunchBehavior) *models.LaunchBehavior { return &b }
