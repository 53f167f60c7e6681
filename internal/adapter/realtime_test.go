// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// realtimeServer answers the join with status and then pushes changes.
func realtimeServer(t *testing.T, status string, joins chan<- joinPayload, changes ...Change) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, realtimePath, r.URL.Path)
		assert.Equal(t, testAnonKey, r.URL.Query().Get("apikey"))

		conn, err := testUpgrader.Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()

		var join frame
		if !assert.NoError(t, conn.ReadJSON(&join)) {
			return
		}
		assert.Equal(t, "phx_join", join.Event)

		var payload joinPayload
		assert.NoError(t, json.Unmarshal(join.Payload, &payload))
		if joins != nil {
			joins <- payload
		}

		reply, _ := json.Marshal(map[string]string{"status": status})
		_ = conn.WriteJSON(frame{Topic: join.Topic, Event: "phx_reply", Payload: reply, Ref: join.Ref})
		if status != "ok" {
			return
		}

		for _, change := range changes {
			raw, _ := json.Marshal(changesPayload{Data: change})
			_ = conn.WriteJSON(frame{Topic: "realtime:other", Event: "postgres_changes", Payload: raw})
			_ = conn.WriteJSON(frame{Topic: join.Topic, Event: "postgres_changes", Payload: raw})
		}

		// hold the socket until the client leaves
		for {
			var f frame
			if err := conn.ReadJSON(&f); err != nil || f.Event == "phx_leave" {
				return
			}
		}
	}
}

func TestRealtime_SubscribeDeliversChanges(t *testing.T) {
	joins := make(chan joinPayload, 1)
	change := Change{Type: "INSERT", Table: "friendships", Record: json.RawMessage(`{"id":"f1","status":"pending"}`)}
	c := newTestClient(t, realtimeServer(t, "ok", joins, change))
	c.SetAccessToken("user-token")

	received := make(chan Change, 4)
	unsubscribe, err := NewRealtime(c).Subscribe(context.Background(), "friendships", "receiver_id=eq.u1", func(ch Change) {
		received <- ch
	})
	require.NoError(t, err)
	defer unsubscribe()

	join := <-joins
	assert.Equal(t, "user-token", join.AccessToken)
	require.Len(t, join.Config.PostgresChanges, 1)
	assert.Equal(t, "friendships", join.Config.PostgresChanges[0].Table)
	assert.Equal(t, "receiver_id=eq.u1", join.Config.PostgresChanges[0].Filter)

	select {
	case got := <-received:
		assert.Equal(t, "INSERT", got.Type)
		assert.JSONEq(t, `{"id":"f1","status":"pending"}`, string(got.Record))
	case <-time.After(2 * time.Second):
		t.Fatal("change was not delivered")
	}

	select {
	case extra := <-received:
		t.Fatalf("change of another topic delivered: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRealtime_JoinRefused(t *testing.T) {
	c := newTestClient(t, realtimeServer(t, "error", nil))

	_, err := NewRealtime(c).Subscribe(context.Background(), "shared_instances", "", func(Change) {})

	assert.ErrorIs(t, err, ErrRealtimeJoin)
}

func TestRealtime_UnsubscribeOnContextDone(t *testing.T) {
	c := newTestClient(t, realtimeServer(t, "ok", nil))
	ctx, cancel := context.WithCancel(context.Background())

	unsubscribe, err := NewRealtime(c).Subscribe(ctx, "friendships", "", func(Change) {})
	require.NoError(t, err)

	cancel()
	assert.NotPanics(t, unsubscribe)
}
