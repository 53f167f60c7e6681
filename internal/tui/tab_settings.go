// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ramStep     = 512
	ramLimitMiB = 65536
)

type settingField struct {
	key   string
	label string
}

var settingFields = []settingField{
	{key: models.KeyMinRAM, label: "Minimum RAM"},
	{key: models.KeyMaxRAM, label: "Maximum RAM"},
	{key: models.KeyLaunchBehavior, label: "On launch"},
	{key: models.KeyShowConsole, label: "Show console"},
}

type settingsTab struct {
	ctx      context.Context
	settings service.SettingsReconciler
	session  models.Session

	config  models.Config
	state   models.SettingsState
	cursor  int
	pending int
}

func newSettingsTab(ctx context.Context, settings service.SettingsReconciler, session models.Session) settingsTab {
	return settingsTab{
		ctx:      ctx,
		settings: settings,
		session:  session,
		state:    models.SettingsLoading,
	}
}

func (t settingsTab) Init() tea.Cmd {
	return t.cmdLoad()
}

func (t settingsTab) cmdLoad() tea.Cmd {
	ctx, settings, session := t.ctx, t.settings, t.session
	return func() tea.Msg {
		cfg, err := settings.Load(ctx, session)
		return settingsLoadedMsg{config: cfg, err: err}
	}
}

func (t settingsTab) cmdSave(key string, value any) tea.Cmd {
	ctx, settings, session := t.ctx, t.settings, t.session
	return func() tea.Msg {
		cfg, err := settings.Update(ctx, session, key, value)
		return settingSavedMsg{key: key, config: cfg, err: err}
	}
}

// nextSettingValue returns the value field takes when stepped in dir
// (-1 or +1). RAM moves in ramStep increments and keeps minRam <= maxRam.
func nextSettingValue(cfg models.Config, field string, dir int) any {
	switch field {
	case models.KeyMinRAM:
		return min(max(cfg.MinRAM+dir*ramStep, ramStep), cfg.MaxRAM)
	case models.KeyMaxRAM:
		return min(max(cfg.MaxRAM+dir*ramStep, cfg.MinRAM), ramLimitMiB)
	case models.KeyLaunchBehavior:
		idx := slices.Index(models.LaunchBehaviors, cfg.LaunchBehavior)
		n := len(models.LaunchBehaviors)
		return models.LaunchBehaviors[((idx+dir)%n+n)%n]
	case models.KeyShowConsole:
		return !cfg.ShowConsole
	}
	return nil
}

func (t settingsTab) Update(msg tea.Msg) (settingsTab, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		t.state = t.settings.State()
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		t.config = msg.config
		return t, nil
	case settingSavedMsg:
		if t.pending > 0 {
			t.pending--
		}
		// Replies of earlier presses would undo later ones still in flight.
		if t.pending == 0 && hasRAMBounds(msg.config) {
			t.config = msg.config
		}
		if msg.err != nil {
			return t, setStatus("", fmt.Errorf("%s was not saved: %w", msg.key, msg.err))
		}
		return t, setStatus("Saved", nil)
	case tea.KeyMsg:
		return t.updateKeys(msg)
	}
	return t, nil
}

func (t settingsTab) updateKeys(msg tea.KeyMsg) (settingsTab, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		t.cursor = clampCursor(t.cursor-1, len(settingFields))
		return t, nil
	case key.Matches(msg, keys.down):
		t.cursor = clampCursor(t.cursor+1, len(settingFields))
		return t, nil
	case key.Matches(msg, keys.reload):
		t.state = models.SettingsLoading
		return t, t.cmdLoad()
	}

	dir := 0
	switch {
	case key.Matches(msg, keys.left):
		dir = -1
	case key.Matches(msg, keys.right), key.Matches(msg, keys.enter):
		dir = 1
	}
	if dir == 0 {
		return t, nil
	}
	if t.state != models.SettingsReady {
		return t, setStatus("", service.ErrSettingsNotReady)
	}

	field := settingFields[t.cursor].key
	value := nextSettingValue(t.config, field, dir)
	if current, _ := t.config.Field(field); current == value {
		return t, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return t, setStatus("", err)
	}
	if err = t.config.SetField(field, raw); err != nil {
		return t, setStatus("", err)
	}
	t.pending++
	return t, t.cmdSave(field, value)
}

// hasRAMBounds reports whether cfg is a real snapshot. Failed updates may
// answer with the zero config.
func hasRAMBounds(cfg models.Config) bool {
	return cfg.MinRAM > 0 && cfg.MaxRAM > 0
}

func (t settingsTab) View() string {
	switch t.state {
	case models.SettingsLoading:
		return renderPage("SETTINGS", "Loading settings...", "")
	case models.SettingsMerging:
		return renderPage("SETTINGS", "Merging cloud settings...", "")
	case models.SettingsFailed:
		return renderPage("SETTINGS", "Settings could not be loaded.", "r: retry")
	}

	var b strings.Builder
	for i, field := range settingFields {
		value, _ := t.config.Field(field.key)
		line := fmt.Sprintf("%s%-14s %s", cursorPrefix(i == t.cursor), field.label, formatSetting(field.key, value))
		if i == t.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if t.session.IsCloudLinked() {
		b.WriteString(helpStyle.Render("\nRAM, launch and console settings sync to your account."))
	}

	return renderPage("SETTINGS", b.String(), "↑/↓: select  ←/→: change  r: reload")
}

func formatSetting(field string, value any) string {
	switch field {
	case models.KeyMinRAM, models.KeyMaxRAM:
		return fmt.Sprintf("%d MB", value)
	case models.KeyShowConsole:
		if value == true {
			return "yes"
		}
		return "no"
	}
	return fmt.Sprint(value)
}
