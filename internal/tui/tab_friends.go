// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type friendRowKind int

const (
	rowRequest friendRowKind = iota
	rowFriend
	rowShare
)

type friendRow struct {
	kind  friendRowKind
	id    string
	label string
}

type friendsTab struct {
	ctx     context.Context
	social  service.SocialService
	session models.Session
	changes <-chan struct{}
	copy    func(string) error

	overview models.SocialOverview
	friends  []models.Friend
	cursor   int
	loading  bool
	loaded   bool
}

func newFriendsTab(ctx context.Context, social service.SocialService, session models.Session, changes <-chan struct{}) friendsTab {
	return friendsTab{
		ctx:     ctx,
		social:  social,
		session: session,
		changes: changes,
		copy:    clipboard.WriteAll,
	}
}

func (t friendsTab) Init() tea.Cmd {
	if !t.session.IsCloudLinked() {
		return nil
	}
	return tea.Batch(t.cmdLoad(), waitForSocialChange(t.changes))
}

func waitForSocialChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return socialChangedMsg{}
	}
}

func (t friendsTab) cmdLoad() tea.Cmd {
	ctx, social, session := t.ctx, t.social, t.session
	return func() tea.Msg {
		overview, err := social.Overview(ctx, session)
		return overviewLoadedMsg{overview: overview, err: err}
	}
}

func (t friendsTab) rows() []friendRow {
	rows := make([]friendRow, 0, len(t.overview.Requests)+len(t.friends)+len(t.overview.Shares))
	for _, req := range t.overview.Requests {
		name := req.RequesterID
		if req.Requester != nil {
			name = req.Requester.Username
		}
		rows = append(rows, friendRow{kind: rowRequest, id: req.ID, label: "request from " + name})
	}
	for _, f := range t.friends {
		rows = append(rows, friendRow{kind: rowFriend, id: f.FriendshipID, label: f.Profile.Username})
	}
	for _, share := range t.overview.Shares {
		sender := share.SenderID
		if share.Sender != nil {
			sender = share.Sender.Username
		}
		rows = append(rows, friendRow{kind: rowShare, id: share.ID, label: fmt.Sprintf("%s shared by %s", share.InstanceName, sender)})
	}
	return rows
}

func (t friendsTab) selected() (friendRow, bool) {
	rows := t.rows()
	if len(rows) == 0 {
		return friendRow{}, false
	}
	return rows[clampCursor(t.cursor, len(rows))], true
}

func (t friendsTab) Update(msg tea.Msg) (friendsTab, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		t.loading = false
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		t.loaded = true
		t.overview = msg.overview
		t.friends = t.social.Friends()
		t.cursor = clampCursor(t.cursor, len(t.rows()))
		return t, nil
	case friendRemovedMsg:
		t.friends = t.social.Friends()
		t.cursor = clampCursor(t.cursor, len(t.rows()))
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		return t, setStatus("Friend removed", nil)
	case friendAcceptedMsg:
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		t.loading = true
		return t, tea.Batch(setStatus("Friend request accepted", nil), t.cmdLoad())
	case shareAcceptedMsg:
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		t.loading = true
		return t, tea.Batch(setStatus(fmt.Sprintf("Instance %q added", msg.instance.Name), nil), t.cmdLoad())
	case socialChangedMsg:
		t.loading = true
		return t, tea.Batch(t.cmdLoad(), waitForSocialChange(t.changes))
	case tea.KeyMsg:
		if !t.session.IsCloudLinked() {
			return t, nil
		}
		return t.updateKeys(msg)
	}
	return t, nil
}

func (t friendsTab) updateKeys(msg tea.KeyMsg) (friendsTab, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		t.cursor = clampCursor(t.cursor-1, len(t.rows()))
		return t, nil
	case key.Matches(msg, keys.down):
		t.cursor = clampCursor(t.cursor+1, len(t.rows()))
		return t, nil
	case key.Matches(msg, keys.reload):
		t.loading = true
		return t, t.cmdLoad()
	case key.Matches(msg, keys.copyID):
		if err := t.copy(t.session.UserID); err != nil {
			return t, setStatus("", fmt.Errorf("copy failed: %w", err))
		}
		return t, setStatus("Your id was copied to the clipboard", nil)
	case key.Matches(msg, keys.remove):
		row, ok := t.selected()
		if !ok || row.kind != rowFriend {
			return t, nil
		}
		return t.remove(row.id)
	case key.Matches(msg, keys.enter):
		row, ok := t.selected()
		if !ok {
			return t, nil
		}
		return t, t.cmdAccept(row)
	}
	return t, nil
}

// remove drops the friend from view before the backend answers.
func (t friendsTab) remove(friendshipID string) (friendsTab, tea.Cmd) {
	done, err := t.social.Remove(t.ctx, t.session, friendshipID)
	if err != nil {
		return t, setStatus("", err)
	}
	t.friends = t.social.Friends()
	t.cursor = clampCursor(t.cursor, len(t.rows()))

	return t, func() tea.Msg {
		return friendRemovedMsg{err: <-done}
	}
}

func (t friendsTab) cmdAccept(row friendRow) tea.Cmd {
	ctx, social, session := t.ctx, t.social, t.session
	switch row.kind {
	case rowRequest:
		return func() tea.Msg {
			return friendAcceptedMsg{err: social.Accept(ctx, session, row.id)}
		}
	case rowShare:
		return func() tea.Msg {
			instance, err := social.AcceptShare(ctx, session, row.id)
			return shareAcceptedMsg{instance: instance, err: err}
		}
	}
	return nil
}

func (t friendsTab) View() string {
	if !t.session.IsCloudLinked() {
		return renderPage("FRIENDS", "Sign in with a cloud account to add friends and share instances.", "")
	}
	if !t.loaded {
		return renderPage("FRIENDS", "Loading...", "")
	}

	var b strings.Builder
	if p := t.overview.Profile; p != nil {
		b.WriteString(fmt.Sprintf("Signed in as %s (%s)\n\n", p.Username, t.session.UserID))
	}

	rows := t.rows()
	if len(rows) == 0 {
		b.WriteString("No friends yet. Use the search tab to find players.")
	}
	for i, row := range rows {
		line := cursorPrefix(i == t.cursor) + fitText(row.label, 48)
		switch row.kind {
		case rowRequest:
			line += helpStyle.Render("  enter: accept")
		case rowShare:
			line += helpStyle.Render("  enter: add instance")
		}
		if i == t.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if t.loading {
		b.WriteString(helpStyle.Render("\nrefreshing..."))
	}

	return renderPage("FRIENDS", b.String(), "↑/↓: select  enter: accept  d: remove  c: copy my id  r: reload")
}
