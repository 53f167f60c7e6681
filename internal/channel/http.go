// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/utils"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/gorilla/websocket"
)

const (
	invokePath = "/api/invoke/{channel}"
	eventsPath = "/api/events"

	reconnectDelay = time.Second
)

// HTTPChannel talks to the host over loopback HTTP and WebSocket.
type HTTPChannel struct {
	client    *utils.HTTPClient
	eventsURL string
	timeout   time.Duration

	mu       sync.RWMutex
	handlers map[string]map[uint64]EventHandler
	nextID   uint64

	logger *logger.Logger
}

// NewHTTPChannel returns a channel rooted at cfg.Address, which may omit the
// scheme.
func NewHTTPChannel(cfg config.Host, logger *logger.Logger) (*HTTPChannel, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid host address: %w", err)
	}

	eventsURL, err := url.Parse(baseURL + eventsPath)
	if err != nil {
		return nil, fmt.Errorf("invalid host address: %w", err)
	}
	if eventsURL.Scheme == "https" {
		eventsURL.Scheme = "wss"
	} else {
		eventsURL.Scheme = "ws"
	}

	return &HTTPChannel{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		eventsURL: eventsURL.String(),
		timeout:   cfg.RequestTimeout,
		handlers:  make(map[string]map[uint64]EventHandler),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// Invoke implements [Channel].
func (c *HTTPChannel) Invoke(ctx context.Context, name string, args ...any) (models.ChannelResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := models.InvokeRequest{Args: make([]json.RawMessage, 0, len(args))}
	for i, arg := range args {
		raw, err := json.Marshal(arg)
		if err != nil {
			return models.ChannelResult{}, fmt.Errorf("error encoding argument %d: %w", i, err)
		}
		req.Args = append(req.Args, raw)
	}

	request := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("channel", name).
		SetBody(req)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		request.SetHeader("X-Trace-ID", traceID)
	}

	resp, err := request.Post(invokePath)
	if err != nil {
		return models.ChannelResult{}, fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}

	var result models.ChannelResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ChannelResult{}, fmt.Errorf("%w: http %d", ErrHostUnavailable, resp.StatusCode())
	}
	if resp.StatusCode() == http.StatusNotFound && !result.Success && strings.HasPrefix(result.Error, "unknown channel") {
		return result, fmt.Errorf("%w: %s", ErrUnknownChannel, name)
	}

	return result, nil
}

// On implements [Channel].
func (c *HTTPChannel) On(event string, handler EventHandler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[uint64]EventHandler)
	}
	c.handlers[event][id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.handlers[event], id)
			if len(c.handlers[event]) == 0 {
				delete(c.handlers, event)
			}
		})
	}
}

// Listen keeps the event WebSocket open until ctx is done, reconnecting
// after a delay whenever the host drops it.
func (c *HTTPChannel) Listen(ctx context.Context) error {
	for {
		err := c.listenOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		c.logger.Warn().Err(err).Str("func", "HTTPChannel.Listen").Msg("event stream lost, reconnecting")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *HTTPChannel) listenOnce(ctx context.Context) error {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.eventsURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHostUnavailable, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	c.logger.Debug().Str("func", "HTTPChannel.listenOnce").Str("url", c.eventsURL).Msg("event stream connected")

	for {
		var ev models.Event
		if err = conn.ReadJSON(&ev); err != nil {
			return err
		}
		c.dispatch(ev)
	}
}

func (c *HTTPChannel) dispatch(ev models.Event) {
	c.mu.RLock()
	handlers := make([]EventHandler, 0, len(c.handlers[ev.Name]))
	for _, h := range c.handlers[ev.Name] {
		handlers = append(handlers, h)
	}
	c.mu.RUnlock()

	for _, h := range handlers {
		h(ev.Payload)
	}
}
