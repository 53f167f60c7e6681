// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	realtimePath      = "/realtime/v1/websocket"
	heartbeatInterval = 25 * time.Second
	joinTimeout       = 10 * time.Second
)

// Change is one row change delivered by the realtime socket.
type Change struct {
	Type      string          `json:"type"`
	Table     string          `json:"table"`
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record"`
}

// ChangeHandler receives the changes of a subscription.
type ChangeHandler func(Change)

// frame is the envelope of every realtime socket message.
type frame struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref,omitempty"`
}

type joinPayload struct {
	Config struct {
		PostgresChanges []postgresChange `json:"postgres_changes"`
	} `json:"config"`
	AccessToken string `json:"access_token,omitempty"`
}

type postgresChange struct {
	Event  string `json:"event"`
	Schema string `json:"schema"`
	Table  string `json:"table"`
	Filter string `json:"filter,omitempty"`
}

type replyPayload struct {
	Status string `json:"status"`
}

type changesPayload struct {
	Data Change `json:"data"`
}

type websocketRealtime struct {
	client *Client
	dialer *websocket.Dialer
	ref    atomic.Uint64
}

// NewRealtime returns the WebSocket [Realtime] of c. Each subscription owns
// its own connection.
func NewRealtime(c *Client) Realtime {
	return &websocketRealtime{client: c, dialer: websocket.DefaultDialer}
}

func (r *websocketRealtime) socketURL() (string, error) {
	u, err := url.Parse(r.client.baseURL + realtimePath)
	if err != nil {
		return "", err
	}
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	q := u.Query()
	q.Set("apikey", r.client.anonKey)
	q.Set("vsn", "1.0.0")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (r *websocketRealtime) nextRef() string {
	return strconv.FormatUint(r.ref.Add(1), 10)
}

func (r *websocketRealtime) Subscribe(ctx context.Context, table, filter string, handler ChangeHandler) (func(), error) {
	socketURL, err := r.socketURL()
	if err != nil {
		return nil, fmt.Errorf("realtime url: %w", err)
	}

	conn, resp, err := r.dialer.DialContext(ctx, socketURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("realtime dial: %w", err)
	}

	topic := "realtime:public:" + table
	join := joinPayload{AccessToken: r.client.AccessToken()}
	join.Config.PostgresChanges = []postgresChange{{Event: "*", Schema: "public", Table: table, Filter: filter}}

	joinRef := r.nextRef()
	if err = writeFrame(conn, topic, "phx_join", join, joinRef); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("realtime join: %w", err)
	}
	if err = awaitJoin(conn, joinRef); err != nil {
		_ = conn.Close()
		return nil, err
	}

	sub := &subscription{
		conn:     conn,
		topic:    topic,
		handler:  handler,
		realtime: r,
		done:     make(chan struct{}),
	}
	go sub.heartbeat()
	go sub.read()

	stop := context.AfterFunc(ctx, sub.close)
	return func() {
		stop()
		sub.close()
	}, nil
}

func writeFrame(conn *websocket.Conn, topic, event string, payload any, ref string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(joinTimeout))
	return conn.WriteJSON(frame{Topic: topic, Event: event, Payload: raw, Ref: ref})
}

// awaitJoin reads until the reply to the join frame arrives.
func awaitJoin(conn *websocket.Conn, ref string) error {
	_ = conn.SetReadDeadline(time.Now().Add(joinTimeout))
	defer func() { _ = conn.SetReadDeadline(time.Time{}) }()

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			return fmt.Errorf("realtime join reply: %w", err)
		}
		if f.Event != "phx_reply" || f.Ref != ref {
			continue
		}
		var reply replyPayload
		_ = json.Unmarshal(f.Payload, &reply)
		if reply.Status != "ok" {
			return fmt.Errorf("%w: status %q", ErrRealtimeJoin, reply.Status)
		}
		return nil
	}
}

type subscription struct {
	conn     *websocket.Conn
	topic    string
	handler  ChangeHandler
	realtime *websocketRealtime

	writeMu sync.Mutex
	once    sync.Once
	done    chan struct{}
}

func (s *subscription) send(topic, event string, payload any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return writeFrame(s.conn, topic, event, payload, s.realtime.nextRef())
}

func (s *subscription) heartbeat() {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if err := s.send("phoenix", "heartbeat", struct{}{}); err != nil {
				s.realtime.client.logger.Warn().Err(err).Str("func", "subscription.heartbeat").Str("topic", s.topic).Msg("heartbeat failed")
				s.close()
				return
			}
		}
	}
}

func (s *subscription) read() {
	log := s.realtime.client.logger
	for {
		var f frame
		if err := s.conn.ReadJSON(&f); err != nil {
			select {
			case <-s.done:
			default:
				log.Warn().Err(err).Str("func", "subscription.read").Str("topic", s.topic).Msg("realtime connection lost")
				s.close()
			}
			return
		}
		if f.Topic != s.topic || !strings.EqualFold(f.Event, "postgres_changes") {
			continue
		}

		var payload changesPayload
		if err := json.Unmarshal(f.Payload, &payload); err != nil {
			log.Warn().Err(err).Str("func", "subscription.read").Str("topic", s.topic).Msg("undecodable change")
			continue
		}
		s.handler(payload.Data)
	}
}

func (s *subscription) close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.send(s.topic, "phx_leave", struct{}{})
		_ = s.conn.Close()
	})
}
