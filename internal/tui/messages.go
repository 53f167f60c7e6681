// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/models"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsLoadedMsg struct {
	config models.Config
	err    error
}

type settingSavedMsg struct {
	key    string
	config models.Config
	err    error
}

type instancesLoadedMsg struct {
	instances []models.Instance
	err       error
}

type instanceDeletedMsg struct {
	name string
	err  error
}

type importProgressMsg models.ProgressEvent

type instancesImportedMsg struct {
	created []models.Instance
	err     error
}

type instanceSharedMsg struct {
	instance string
	friend   string
	err      error
}

type modsLoadedMsg struct {
	instance string
	mods     []models.Mod
	err      error
}

type modChangedMsg struct {
	err error
}

type texturesLoadedMsg struct {
	urls map[models.TextureKind]string
}

type textureUploadedMsg struct {
	kind models.TextureKind
	url  string
	err  error
}

type overviewLoadedMsg struct {
	overview models.SocialOverview
	err      error
}

type friendRemovedMsg struct {
	err error
}

type friendAcceptedMsg struct {
	err error
}

type shareAcceptedMsg struct {
	instance models.Instance
	err      error
}

type socialChangedMsg struct{}

type searchResultMsg service.SearchResult

type friendRequestSentMsg struct {
	username string
	err      error
}

// statusMsg replaces the status line. A non-nil err is shown as an error.
type statusMsg struct {
	text string
	err  error
}

type clearStatusMsg struct {
	seq int
}

func setStatus(text string, err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, err: err} }
}
