// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(line, &entry))
	return entry
}

// ── newLogger ──

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "blocklauncher-host")

	l.Info().Msg("config loaded")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "blocklauncher-host", entry["role"])
	assert.Equal(t, "config loaded", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "blocklauncher").WithComponent("sync-job")

	l.Warn().Msg("push failed")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "blocklauncher", entry["role"])
	assert.Equal(t, "sync-job", entry["component"])
}

func TestGetChildLogger_InheritsRole(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "blocklauncher")
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child")
	assert.Equal(t, "blocklauncher", decodeEntry(t, buf.Bytes())["role"])
}

// ── NewClientLogger ──

func TestNewClientLogger_WritesLogFile(t *testing.T) {
	dir := t.TempDir()
	l := NewClientLogger("blocklauncher", dir)

	l.Info().Str("user_id", "user-1").Msg("signed in to cloud")
	l.Info().Msg("second entry")

	f, err := os.Open(filepath.Join(dir, "launcher.log"))
	require.NoError(t, err)
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, append([]byte(nil), scanner.Bytes()...))
	}
	require.Len(t, lines, 2)

	first := decodeEntry(t, lines[0])
	assert.Equal(t, "blocklauncher", first["role"])
	assert.Equal(t, "user-1", first["user_id"])
}

func TestNewClientLogger_MissingDirFallsBack(t *testing.T) {
	l := NewClientLogger("blocklauncher", filepath.Join(t.TempDir(), "missing", "dir"))
	require.NotNil(t, l)
}

// ── Nop ──

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("discarded")
	assert.Empty(t, buf.String())
}

// ── Context helpers ──

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	ctx := newLogger(&buf, "blocklauncher").WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "blocklauncher", decodeEntry(t, buf.Bytes())["role"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := newLogger(&buf, "blocklauncher-host").WithContext(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/api/invoke/config:get", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("invoke")
	assert.Equal(t, "blocklauncher-host", decodeEntry(t, buf.Bytes())["role"])
}
