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

type instancesMode int

const (
	modeInstanceList instancesMode = iota
	modeImportInput
	modeMods
	modeSharePick
)

type instancesTab struct {
	ctx       context.Context
	instances service.InstanceService
	mods      service.ModService
	social    service.SocialService
	session   models.Session

	mode   instancesMode
	items  []models.Instance
	cursor int
	loaded bool

	input      textinput.Model
	importing  bool
	importDone chan struct{}
	progressCh chan models.ProgressEvent
	lastEvent  models.ProgressEvent

	modsOf     string
	modList    []models.Mod
	modCursor  int
	modsLoaded bool

	friends     []models.Friend
	shareCursor int
}

func newInstancesTab(ctx context.Context, instances service.InstanceService, mods service.ModService, social service.SocialService, session models.Session) instancesTab {
	input := textinput.New()
	input.Placeholder = "1.20.1, fabric-loader-0.15.11-1.20.1"
	input.Prompt = "Import versions: "

	return instancesTab{
		ctx:       ctx,
		instances: instances,
		mods:      mods,
		social:    social,
		session:   session,
		input:     input,
	}
}

func (t instancesTab) Init() tea.Cmd {
	return t.cmdList()
}

// typing reports whether letters go to the import input.
func (t instancesTab) typing() bool {
	return t.mode == modeImportInput
}

func (t instancesTab) cmdList() tea.Cmd {
	ctx, instances := t.ctx, t.instances
	return func() tea.Msg {
		items, err := instances.List(ctx)
		return instancesLoadedMsg{instances: items, err: err}
	}
}

func (t instancesTab) selected() (models.Instance, bool) {
	if len(t.items) == 0 {
		return models.Instance{}, false
	}
	return t.items[clampCursor(t.cursor, len(t.items))], true
}

func (t instancesTab) Update(msg tea.Msg) (instancesTab, tea.Cmd) {
	switch msg := msg.(type) {
	case instancesLoadedMsg:
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		t.loaded = true
		t.items = msg.instances
		t.cursor = clampCursor(t.cursor, len(t.items))
		return t, nil
	case instanceDeletedMsg:
		t.items = t.instances.Items()
		t.cursor = clampCursor(t.cursor, len(t.items))
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		return t, setStatus(fmt.Sprintf("Instance %q deleted", msg.name), nil)
	case importProgressMsg:
		if !t.importing {
			return t, nil
		}
		t.lastEvent = models.ProgressEvent(msg)
		return t, waitForImportProgress(t.progressCh, t.importDone)
	case instancesImportedMsg:
		t.importing = false
		t.lastEvent = models.ProgressEvent{}
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		t.items = t.instances.Items()
		t.cursor = clampCursor(t.cursor, len(t.items))
		return t, setStatus(fmt.Sprintf("Imported %d instance(s)", len(msg.created)), nil)
	case modsLoadedMsg:
		if msg.err != nil {
			t.mode = modeInstanceList
			return t, setStatus("", msg.err)
		}
		t.modsOf = msg.instance
		t.modList = msg.mods
		t.modsLoaded = true
		t.modCursor = clampCursor(t.modCursor, len(t.modList))
		return t, nil
	case modChangedMsg:
		t.modList = t.mods.Items()
		t.modCursor = clampCursor(t.modCursor, len(t.modList))
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		return t, nil
	case instanceSharedMsg:
		if msg.err != nil {
			return t, setStatus("", msg.err)
		}
		return t, setStatus(fmt.Sprintf("Shared %q with %s", msg.instance, msg.friend), nil)
	case tea.KeyMsg:
		switch t.mode {
		case modeImportInput:
			return t.updateImportKeys(msg)
		case modeMods:
			return t.updateModKeys(msg)
		case modeSharePick:
			return t.updateShareKeys(msg)
		}
		return t.updateListKeys(msg)
	}
	return t, nil
}

func (t instancesTab) updateListKeys(msg tea.KeyMsg) (instancesTab, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		t.cursor = clampCursor(t.cursor-1, len(t.items))
	case key.Matches(msg, keys.down):
		t.cursor = clampCursor(t.cursor+1, len(t.items))
	case key.Matches(msg, keys.reload):
		return t, t.cmdList()
	case key.Matches(msg, keys.add):
		if t.importing {
			return t, nil
		}
		t.mode = modeImportInput
		t.input.SetValue("")
		cmd := t.input.Focus()
		return t, cmd
	case key.Matches(msg, keys.remove):
		instance, ok := t.selected()
		if !ok {
			return t, nil
		}
		return t.remove(instance.Name)
	case key.Matches(msg, keys.enter):
		instance, ok := t.selected()
		if !ok {
			return t, nil
		}
		t.mode = modeMods
		t.modsLoaded = false
		t.modCursor = 0
		return t, t.cmdLoadMods(instance.Name)
	case key.Matches(msg, keys.share):
		if _, ok := t.selected(); !ok || !t.session.IsCloudLinked() {
			return t, nil
		}
		t.friends = t.social.Friends()
		if len(t.friends) == 0 {
			return t, setStatus("Add a friend first to share instances", nil)
		}
		t.mode = modeSharePick
		t.shareCursor = 0
	}
	return t, nil
}

// remove drops the instance from view before the host answers.
func (t instancesTab) remove(name string) (instancesTab, tea.Cmd) {
	done, err := t.instances.Delete(t.ctx, t.session, name)
	if err != nil {
		return t, setStatus("", err)
	}
	t.items = t.instances.Items()
	t.cursor = clampCursor(t.cursor, len(t.items))

	return t, func() tea.Msg {
		return instanceDeletedMsg{name: name, err: <-done}
	}
}

func (t instancesTab) updateImportKeys(msg tea.KeyMsg) (instancesTab, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		t.mode = modeInstanceList
		t.input.Blur()
		return t, nil
	case key.Matches(msg, searchKeys.enter):
		versionIDs := parseVersionIDs(t.input.Value())
		if len(versionIDs) == 0 {
			return t, nil
		}
		t.mode = modeInstanceList
		t.input.Blur()
		t.importing = true
		t.progressCh = make(chan models.ProgressEvent, 1)
		t.importDone = make(chan struct{})
		return t, tea.Batch(
			t.cmdImport(versionIDs, t.progressCh, t.importDone),
			waitForImportProgress(t.progressCh, t.importDone),
		)
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func parseVersionIDs(s string) []string {
	return strings.Fields(strings.ReplaceAll(s, ",", " "))
}

func (t instancesTab) cmdImport(versionIDs []string, progressCh chan models.ProgressEvent, done chan struct{}) tea.Cmd {
	ctx, instances := t.ctx, t.instances
	return func() tea.Msg {
		defer close(done)
		created, err := instances.Import(ctx, versionIDs, func(ev models.ProgressEvent) {
			offer(progressCh, ev)
		})
		return instancesImportedMsg{created: created, err: err}
	}
}

func waitForImportProgress(progressCh <-chan models.ProgressEvent, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-progressCh:
			return importProgressMsg(ev)
		case <-done:
			return nil
		}
	}
}

func (t instancesTab) cmdLoadMods(instanceName string) tea.Cmd {
	ctx, mods := t.ctx, t.mods
	return func() tea.Msg {
		list, err := mods.Load(ctx, instanceName)
		return modsLoadedMsg{instance: instanceName, mods: list, err: err}
	}
}

func (t instancesTab) updateModKeys(msg tea.KeyMsg) (instancesTab, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		t.mode = modeInstanceList
		return t, nil
	case key.Matches(msg, keys.up):
		t.modCursor = clampCursor(t.modCursor-1, len(t.modList))
		return t, nil
	case key.Matches(msg, keys.down):
		t.modCursor = clampCursor(t.modCursor+1, len(t.modList))
		return t, nil
	}

	if !t.modsLoaded || len(t.modList) == 0 {
		return t, nil
	}
	fileName := t.modList[clampCursor(t.modCursor, len(t.modList))].FileName

	var (
		done <-chan error
		err  error
	)
	switch {
	case key.Matches(msg, keys.enter):
		done, err = t.mods.Toggle(t.ctx, fileName)
	case key.Matches(msg, keys.remove):
		done, err = t.mods.Delete(t.ctx, fileName)
	default:
		return t, nil
	}
	if err != nil {
		return t, setStatus("", err)
	}
	t.modList = t.mods.Items()
	t.modCursor = clampCursor(t.modCursor, len(t.modList))

	return t, func() tea.Msg {
		return modChangedMsg{err: <-done}
	}
}

func (t instancesTab) updateShareKeys(msg tea.KeyMsg) (instancesTab, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		t.mode = modeInstanceList
	case key.Matches(msg, keys.up):
		t.shareCursor = clampCursor(t.shareCursor-1, len(t.friends))
	case key.Matches(msg, keys.down):
		t.shareCursor = clampCursor(t.shareCursor+1, len(t.friends))
	case key.Matches(msg, keys.enter):
		instance, ok := t.selected()
		if !ok || len(t.friends) == 0 {
			return t, nil
		}
		friend := t.friends[clampCursor(t.shareCursor, len(t.friends))].Profile
		t.mode = modeInstanceList

		ctx, social, session := t.ctx, t.social, t.session
		return t, func() tea.Msg {
			err := social.Share(ctx, session, instance.Name, friend.ID)
			return instanceSharedMsg{instance: instance.Name, friend: friend.Username, err: err}
		}
	}
	return t, nil
}

func (t instancesTab) View() string {
	switch t.mode {
	case modeMods:
		return t.viewMods()
	case modeSharePick:
		return t.viewSharePick()
	}

	if !t.loaded {
		return renderPage("INSTANCES", "Loading...", "")
	}

	var b strings.Builder
	if t.mode == modeImportInput {
		b.WriteString(t.input.View())
		b.WriteString("\n\n")
	}
	if t.importing {
		status := t.lastEvent.Status
		if status == "" {
			status = "importing"
		}
		b.WriteString(progressBar(t.lastEvent.Progress, 30))
		b.WriteString("  " + helpStyle.Render(status))
		b.WriteString("\n\n")
	}

	if len(t.items) == 0 {
		b.WriteString("No instances yet. Press n to import versions from another launcher.")
	}
	for i, instance := range t.items {
		line := cursorPrefix(i == t.cursor) + fitText(instance.Name, 32)
		line += helpStyle.Render("  " + instanceVersion(instance))
		if i == t.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	hotKeys := "↑/↓: select  enter: mods  n: import  d: delete  r: reload"
	if t.mode == modeImportInput {
		hotKeys = "enter: import  esc: cancel"
	} else if t.session.IsCloudLinked() {
		hotKeys += "  s: share"
	}
	return renderPage("INSTANCES", b.String(), hotKeys)
}

func instanceVersion(instance models.Instance) string {
	if instance.Loader == "" {
		return instance.GameVersion
	}
	return fmt.Sprintf("%s %s %s", instance.GameVersion, instance.Loader, instance.LoaderVersion)
}

func (t instancesTab) viewMods() string {
	title := "MODS"
	if t.modsOf != "" {
		title += " · " + t.modsOf
	}
	if !t.modsLoaded {
		return renderPage(title, "Loading...", "esc: back")
	}

	var b strings.Builder
	if len(t.modList) == 0 {
		b.WriteString("This instance has no mods.")
	}
	for i, mod := range t.modList {
		state := "[ ]"
		if mod.Enabled {
			state = "[x]"
		}
		name := mod.Name
		if name == "" {
			name = mod.FileName
		}
		line := cursorPrefix(i == t.modCursor) + state + " " + fitText(name, 44)
		if i == t.modCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage(title, b.String(), "↑/↓: select  enter: enable/disable  d: delete  esc: back")
}

func (t instancesTab) viewSharePick() string {
	instance, _ := t.selected()

	var b strings.Builder
	for i, f := range t.friends {
		line := cursorPrefix(i == t.shareCursor) + f.Profile.Username
		if i == t.shareCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage("SHARE · "+instance.Name, b.String(), "↑/↓: select friend  enter: share  esc: back")
}
