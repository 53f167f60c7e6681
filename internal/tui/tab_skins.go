// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var textureKinds = []models.TextureKind{models.TextureSkin, models.TextureCape}

// skinsTab uploads a PNG from disk as the player's skin or cape.
type skinsTab struct {
	ctx     context.Context
	skins   service.SkinService
	session models.Session

	input     textinput.Model
	kind      int
	urls      map[models.TextureKind]string
	uploading bool
}

func newSkinsTab(ctx context.Context, skins service.SkinService, session models.Session) skinsTab {
	input := textinput.New()
	input.Placeholder = "/path/to/texture.png"
	input.Prompt = "File: "

	return skinsTab{
		ctx:     ctx,
		skins:   skins,
		session: session,
		input:   input,
		urls:    make(map[models.TextureKind]string),
	}
}

func (t skinsTab) Init() tea.Cmd {
	if !t.session.IsCloudLinked() {
		return nil
	}

	ctx, skins, userID := t.ctx, t.skins, t.session.UserID
	return func() tea.Msg {
		urls := make(map[models.TextureKind]string, len(textureKinds))
		for _, kind := range textureKinds {
			if url, ok := skins.TextureURL(ctx, kind, userID); ok {
				urls[kind] = url
			}
		}
		return texturesLoadedMsg{urls: urls}
	}
}

func (t skinsTab) focus() (skinsTab, tea.Cmd) {
	cmd := t.input.Focus()
	return t, cmd
}

func (t skinsTab) blur() skinsTab {
	t.input.Blur()
	return t
}

func (t skinsTab) Update(msg tea.Msg) (skinsTab, tea.Cmd) {
	switch msg := msg.(type) {
	case texturesLoadedMsg:
		for kind, url := range msg.urls {
			t.urls[kind] = url
		}
		return t, nil
	case textureUploadedMsg:
		t.uploading = false
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		t.urls[msg.kind] = msg.url
		t.input.SetValue("")
		return t, setStatus(textureLabel(msg.kind)+" uploaded", nil)
	case tea.KeyMsg:
		if !t.session.IsCloudLinked() {
			return t, nil
		}
		return t.updateKeys(msg)
	}
	return t, nil
}

func (t skinsTab) updateKeys(msg tea.KeyMsg) (skinsTab, tea.Cmd) {
	switch {
	case key.Matches(msg, searchKeys.up):
		t.kind = clampCursor(t.kind-1, len(textureKinds))
		return t, nil
	case key.Matches(msg, searchKeys.down):
		t.kind = clampCursor(t.kind+1, len(textureKinds))
		return t, nil
	case key.Matches(msg, searchKeys.enter):
		path := strings.TrimSpace(t.input.Value())
		if t.uploading || path == "" {
			return t, nil
		}
		t.uploading = true
		return t, t.cmdUpload(textureKinds[t.kind], path)
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t skinsTab) cmdUpload(kind models.TextureKind, path string) tea.Cmd {
	ctx, skins, session := t.ctx, t.skins, t.session
	return func() tea.Msg {
		upload := skins.UploadSkin
		if kind == models.TextureCape {
			upload = skins.UploadCape
		}
		url, err := upload(ctx, session, path)
		return textureUploadedMsg{kind: kind, url: url, err: err}
	}
}

func textureLabel(kind models.TextureKind) string {
	if kind == models.TextureCape {
		return "Cape"
	}
	return "Skin"
}

func (t skinsTab) View() string {
	if !t.session.IsCloudLinked() {
		return renderPage("SKINS", "Sign in with a cloud account to upload skins and capes.", "")
	}

	var b strings.Builder
	for i, kind := range textureKinds {
		url := t.urls[kind]
		if url == "" {
			url = "not uploaded"
		}
		line := fmt.Sprintf("%s%-5s %s", cursorPrefix(i == t.kind), textureLabel(kind), helpStyle.Render(fitText(url, 60)))
		if i == t.kind {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.input.View())
	if t.uploading {
		b.WriteString(helpStyle.Render("\nuploading..."))
	}

	return renderPage("SKINS", b.String(), "↑/↓: skin or cape  enter: upload PNG")
}
