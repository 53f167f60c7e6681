// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	debounceDelay time.Duration
	logger        *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, debounceDelay time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:      services,
		buildInfo:     buildInfo,
		debounceDelay: debounceDelay,
		logger:        logger,
	}
}

// Run shows the launcher for session until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context, session models.Session) error {
	results := make(chan service.SearchResult, 1)
	search := t.services.NewUserSearch(ctx, session, t.debounceDelay, func(res service.SearchResult) {
		offer(results, res)
	})
	defer search.Close()

	changes := make(chan struct{}, 1)
	if session.IsCloudLinked() {
		stop, err := t.services.Social.Watch(ctx, session, func() { offer(changes, struct{}{}) })
		if err != nil {
			t.logger.Warn().Err(err).Str("func", "TUI.Run").Msg("live friend updates are unavailable")
		} else {
			defer stop()
		}
	}

	root := newRootModel(session, t.buildInfo, rootTabs{
		settings:  newSettingsTab(ctx, t.services.Settings, session),
		instances: newInstancesTab(ctx, t.services.Instances, t.services.Mods, t.services.Social, session),
		friends:   newFriendsTab(ctx, t.services.Social, session, changes),
		search:    newSearchTab(ctx, t.services.Social, session, search, results),
		skins:     newSkinsTab(ctx, t.services.Skins, session),
	})

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// offer hands v to a one-slot channel, replacing a value nobody took yet.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
