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

type searchTab struct {
	ctx     context.Context
	social  service.SocialService
	session models.Session
	search  service.UserSearch
	results <-chan service.SearchResult

	input    textinput.Model
	query    string
	profiles []models.Profile
	cursor   int
	sending  bool
}

func newSearchTab(ctx context.Context, social service.SocialService, session models.Session, search service.UserSearch, results <-chan service.SearchResult) searchTab {
	input := textinput.New()
	input.Placeholder = "username"
	input.CharLimit = 16
	input.Prompt = "Find player: "

	return searchTab{
		ctx:     ctx,
		social:  social,
		session: session,
		search:  search,
		results: results,
		input:   input,
	}
}

func (t searchTab) Init() tea.Cmd {
	return waitForSearch(t.results)
}

func waitForSearch(results <-chan service.SearchResult) tea.Cmd {
	if results == nil {
		return nil
	}
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}
		return searchResultMsg(res)
	}
}

// focus is called when the tab becomes active.
func (t searchTab) focus() (searchTab, tea.Cmd) {
	cmd := t.input.Focus()
	return t, cmd
}

func (t searchTab) blur() searchTab {
	t.input.Blur()
	return t
}

func (t searchTab) Update(msg tea.Msg) (searchTab, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg:
		if msg.Err != nil {
			return t, tea.Batch(setStatus("", msg.Err), waitForSearch(t.results))
		}
		t.query = msg.Query
		t.profiles = msg.Value
		t.cursor = clampCursor(t.cursor, len(t.profiles))
		return t, waitForSearch(t.results)
	case friendRequestSentMsg:
		t.sending = false
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		return t, setStatus(fmt.Sprintf("Friend request sent to %s", msg.username), nil)
	case tea.KeyMsg:
		if !t.session.IsCloudLinked() {
			return t, nil
		}
		return t.updateKeys(msg)
	}
	return t, nil
}

func (t searchTab) updateKeys(msg tea.KeyMsg) (searchTab, tea.Cmd) {
	switch {
	case key.Matches(msg, searchKeys.up):
		t.cursor = clampCursor(t.cursor-1, len(t.profiles))
		return t, nil
	case key.Matches(msg, searchKeys.down):
		t.cursor = clampCursor(t.cursor+1, len(t.profiles))
		return t, nil
	case key.Matches(msg, searchKeys.enter):
		if t.sending || len(t.profiles) == 0 {
			return t, nil
		}
		t.sending = true
		return t, t.cmdSendRequest(t.profiles[clampCursor(t.cursor, len(t.profiles))].Username)
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if value := t.input.Value(); value != before {
		t.search.Input(value)
	}
	return t, cmd
}

func (t searchTab) cmdSendRequest(username string) tea.Cmd {
	ctx, social, session := t.ctx, t.social, t.session
	return func() tea.Msg {
		return friendRequestSentMsg{username: username, err: social.SendRequest(ctx, session, username)}
	}
}

func (t searchTab) View() string {
	if !t.session.IsCloudLinked() {
		return renderPage("SEARCH", "Sign in with a cloud account to search for players.", "")
	}

	var b strings.Builder
	b.WriteString(t.input.View())
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(t.input.Value()) == "":
		b.WriteString(helpStyle.Render("Start typing to search."))
	case len(t.profiles) == 0 && t.query != "":
		b.WriteString(fmt.Sprintf("No players match %q.", t.query))
	}
	for i, p := range t.profiles {
		line := cursorPrefix(i == t.cursor) + p.Username
		if i == t.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("SEARCH", b.String(), "↑/↓: select  enter: send friend request")
}
