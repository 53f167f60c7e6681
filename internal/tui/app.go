// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/blocklauncher/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 4 * time.Second

type tabID int

const (
	tabSettings tabID = iota
	tabInstances
	tabFriends
	tabSearch
	tabSkins
	tabCount
)

var tabTitles = [tabCount]string{"Settings", "Instances", "Friends", "Search", "Skins"}

// rootModel routes keys to the active tab and every other message to all
// tabs. It also owns the status line.
type rootModel struct {
	session   models.Session
	buildInfo models.AppBuildInfo

	active    tabID
	settings  settingsTab
	instances instancesTab
	friends   friendsTab
	search    searchTab
	skins     skinsTab

	status        string
	statusErr     bool
	statusSeq     int
	showBuildInfo bool
}

type rootTabs struct {
	settings  settingsTab
	instances instancesTab
	friends   friendsTab
	search    searchTab
	skins     skinsTab
}

func newRootModel(session models.Session, buildInfo models.AppBuildInfo, tabs rootTabs) rootModel {
	return rootModel{
		session:   session,
		buildInfo: buildInfo,
		settings:  tabs.settings,
		instances: tabs.instances,
		friends:   tabs.friends,
		search:    tabs.search,
		skins:     tabs.skins,
	}
}

func (r rootModel) Init() tea.Cmd {
	return tea.Batch(r.settings.Init(), r.instances.Init(), r.friends.Init(), r.search.Init(), r.skins.Init())
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		r.statusSeq++
		r.statusErr = msg.err != nil
		r.status = msg.text
		if msg.err != nil {
			r.status = humanizeError(msg.err)
		}
		seq := r.statusSeq
		return r, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
	case clearStatusMsg:
		if msg.seq == r.statusSeq {
			r.status, r.statusErr = "", false
		}
		return r, nil
	case tea.KeyMsg:
		return r.updateKeys(msg)
	}

	cmds := make([]tea.Cmd, tabCount)
	r.settings, cmds[tabSettings] = r.settings.Update(msg)
	r.instances, cmds[tabInstances] = r.instances.Update(msg)
	r.friends, cmds[tabFriends] = r.friends.Update(msg)
	r.search, cmds[tabSearch] = r.search.Update(msg)
	r.skins, cmds[tabSkins] = r.skins.Update(msg)
	return r, tea.Batch(cmds...)
}

func (r rootModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		return r, tea.Quit
	}
	if r.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			r.showBuildInfo = false
		}
		return r, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		return r.switchTab((r.active + 1) % tabCount)
	case key.Matches(msg, keys.backtab):
		return r.switchTab((r.active + tabCount - 1) % tabCount)
	}

	if !r.typing() {
		switch {
		case key.Matches(msg, keys.quit):
			return r, tea.Quit
		case key.Matches(msg, keys.info):
			r.showBuildInfo = true
			return r, nil
		}
	}

	var cmd tea.Cmd
	switch r.active {
	case tabSettings:
		r.settings, cmd = r.settings.Update(msg)
	case tabInstances:
		r.instances, cmd = r.instances.Update(msg)
	case tabFriends:
		r.friends, cmd = r.friends.Update(msg)
	case tabSearch:
		r.search, cmd = r.search.Update(msg)
	case tabSkins:
		r.skins, cmd = r.skins.Update(msg)
	}
	return r, cmd
}

// typing reports whether the active tab has a focused text input, where
// letters are text rather than shortcuts.
func (r rootModel) typing() bool {
	switch r.active {
	case tabSearch, tabSkins:
		return r.session.IsCloudLinked()
	case tabInstances:
		return r.instances.typing()
	}
	return false
}

func (r rootModel) switchTab(next tabID) (tea.Model, tea.Cmd) {
	switch r.active {
	case tabSearch:
		r.search = r.search.blur()
	case tabSkins:
		r.skins = r.skins.blur()
	}
	r.active = next

	var cmd tea.Cmd
	switch next {
	case tabSearch:
		r.search, cmd = r.search.focus()
	case tabSkins:
		r.skins, cmd = r.skins.focus()
	}
	return r, cmd
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var b strings.Builder
	for i, title := range tabTitles {
		if tabID(i) == r.active {
			b.WriteString(activeTabStyle.Render(title))
		} else {
			b.WriteString(inactiveTabStyle.Render(title))
		}
	}
	b.WriteString(helpStyle.Render("  " + accountLabel(r.session)))
	b.WriteString("\n\n")

	switch r.active {
	case tabSettings:
		b.WriteString(r.settings.View())
	case tabInstances:
		b.WriteString(r.instances.View())
	case tabFriends:
		b.WriteString(r.friends.View())
	case tabSearch:
		b.WriteString(r.search.View())
	case tabSkins:
		b.WriteString(r.skins.View())
	}

	if r.status != "" {
		b.WriteString("\n\n")
		if r.statusErr {
			b.WriteString(errorStyle.Render(r.status))
		} else {
			b.WriteString(okStyle.Render(r.status))
		}
	}

	return appStyle.Render(b.String())
}

func accountLabel(session models.Session) string {
	name := session.Username
	if name == "" {
		name = "player"
	}
	if session.IsCloudLinked() {
		return name + " (cloud)"
	}
	return name + " (" + string(session.AccountType) + ")"
}
