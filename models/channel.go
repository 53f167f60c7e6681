// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Local operation channel names.
const (
	ChannelConfigGet        = "config:get"
	ChannelConfigSet        = "config:set"
	ChannelConfigSetGame    = "config:set-game-path"
	ChannelConfigSelectJava = "config:select-java"
	ChannelConfigResetJava  = "config:reset-java"
	ChannelAppReset         = "app:reset"
	ChannelInstanceImport   = "instance:import-external"
	ChannelInstanceList     = "instance:list"
	ChannelInstanceDelete   = "instance:delete"
	ChannelInstanceSave     = "instance:save"
	ChannelModsList         = "mods:list"
	ChannelModsToggle       = "mods:toggle"
	ChannelModsDelete       = "mods:delete"
)

// Progress event names.
const (
	EventInstanceImportProgress = "instance:import-progress"
	EventModsInstallProgress    = "mods:install-progress"
	EventLaunchProgress         = "launch:progress"
)

// Reset modes accepted by app:reset.
const (
	ResetSettings = "settings"
	ResetFull     = "full"
)

// InvokeRequest is the body of one channel invocation.
type InvokeRequest struct {
	Args []json.RawMessage `json:"args"`
}

// ChannelResult is what every channel invocation answers with.
type ChannelResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ProgressEvent is one progress notification of a long-running operation.
type ProgressEvent struct {
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
}

// Event is a named progress notification as written to the event stream.
type Event struct {
	Name    string        `json:"event"`
	Payload ProgressEvent `json:"payload"`
}
