// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncableSettings is the portable projection of [Config] mirrored to the
// cloud. Nil fields are absent from the projection.
//
// Only device-independent keys belong here. Paths (game path, instances path,
// Java runtimes) must never be added.
type SyncableSettings struct {
	MinRAM         *int            `json:"minRam,omitempty"`
	MaxRAM         *int            `json:"maxRam,omitempty"`
	LaunchBehavior *LaunchBehavior `json:"launchBehavior,omitempty"`
	ShowConsole    *bool           `json:"showConsole,omitempty"`
}

// SyncableKeys is the allow-list of config keys mirrored to the cloud.
var SyncableKeys = []string{KeyMinRAM, KeyMaxRAM, KeyLaunchBehavior, KeyShowConsole}

// IsSyncableKey reports whether key is on the cloud allow-list.
func IsSyncableKey(key string) bool {
	for _, k := range SyncableKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ProjectSettings derives the allow-listed subset of cfg.
func ProjectSettings(cfg Config) SyncableSettings {
	minRAM, maxRAM := cfg.MinRAM, cfg.MaxRAM
	behavior := cfg.LaunchBehavior
	showConsole := cfg.ShowConsole

	return SyncableSettings{
		MinRAM:         &minRAM,
		MaxRAM:         &maxRAM,
		LaunchBehavior: &behavior,
		ShowConsole:    &showConsole,
	}
}

// Values returns the present fields keyed by their config key.
func (s SyncableSettings) Values() map[string]any {
	out := make(map[string]any, len(SyncableKeys))
	if s.MinRAM != nil {
		out[KeyMinRAM] = *s.MinRAM
	}
	if s.MaxRAM != nil {
		out[KeyMaxRAM] = *s.MaxRAM
	}
	if s.LaunchBehavior != nil {
		out[KeyLaunchBehavior] = *s.LaunchBehavior
	}
	if s.ShowConsole != nil {
		out[KeyShowConsole] = *s.ShowConsole
	}
	return out
}

// ApplyTo overlays every present field onto cfg and returns the keys it
// wrote, in allow-list order. Empty launch behaviors are skipped.
func (s SyncableSettings) ApplyTo(cfg *Config) []string {
	applied := make([]string, 0, len(SyncableKeys))
	if s.MinRAM != nil {
		cfg.MinRAM = *s.MinRAM
		applied = append(applied, KeyMinRAM)
	}
	if s.MaxRAM != nil {
		cfg.MaxRAM = *s.MaxRAM
		applied = append(applied, KeyMaxRAM)
	}
	if s.LaunchBehavior != nil && *s.LaunchBehavior != "" {
		cfg.LaunchBehavior = *s.LaunchBehavior
		applied = append(applied, KeyLaunchBehavior)
	}
	if s.ShowConsole != nil {
		cfg.ShowConsole = *s.ShowConsole
		applied = append(applied, KeyShowConsole)
	}
	return applied
}

// SettingsRow is the wire shape of one row of the backend "settings" table.
// There is one row per user.
type SettingsRow struct {
	UserID         string          `json:"user_id"`
	MinRAM         *int            `json:"min_ram,omitempty"`
	MaxRAM         *int            `json:"max_ram,omitempty"`
	LaunchBehavior *LaunchBehavior `json:"launch_behavior,omitempty"`
	ShowConsole    *bool           `json:"show_console,omitempty"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// Settings converts the row back into the projection.
func (r SettingsRow) Settings() SyncableSettings {
	return SyncableSettings{
		MinRAM:         r.MinRAM,
		MaxRAM:         r.MaxRAM,
		LaunchBehavior: r.LaunchBehavior,
		ShowConsole:    r.ShowConsole,
	}
}

// NewSettingsRow builds the row stored for userID.
func NewSettingsRow(userID string, s SyncableSettings, now time.Time) SettingsRow {
	return SettingsRow{
		UserID:         userID,
		MinRAM:         s.MinRAM,
		MaxRAM:         s.MaxRAM,
		LaunchBehavior: s.LaunchBehavior,
		ShowConsole:    s.ShowConsole,
		UpdatedAt:      &now,
	}
}

// SettingsState is the load state of the settings page.
type SettingsState string

const (
	SettingsLoading SettingsState = "loading"
	SettingsMerging SettingsState = "merging"
	SettingsReady   SettingsState = "ready"
	SettingsFailed  SettingsState = "failed"
)
