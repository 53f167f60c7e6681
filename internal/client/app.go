// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/internal/workers"
	"github.com/MKhiriev/blocklauncher/models"
)

// flushTimeout bounds how long shutdown waits for cloud mirrors in flight.
const flushTimeout = 5 * time.Second

type App struct {
	cfg      *config.LauncherConfig
	services *service.ClientServices
	listener Listener
	auth     adapter.AuthClient
	ui       UI
	detached *workers.Detached
	logger   *logger.Logger
}

// NewApp wires the launcher runtime. auth is nil when no backend is
// configured, in which case the session is always offline.
func NewApp(
	cfg *config.LauncherConfig,
	services *service.ClientServices,
	listener Listener,
	auth adapter.AuthClient,
	ui UI,
	detached *workers.Detached,
	logger *logger.Logger,
) (*App, error) {
	if cfg == nil || services == nil || listener == nil || ui == nil || detached == nil {
		return nil, errors.New("launcher app is missing a dependency")
	}

	return &App{
		cfg:      cfg,
		services: services,
		listener: listener,
		auth:     auth,
		ui:       ui,
		detached: detached,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.run(a.logger.WithContext(ctx))
}

func (a *App) run(ctx context.Context) error {
	session := a.establishSession(ctx)

	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	background := workers.NewWorkers(
		workers.Func(func() {
			go func() {
				if err := a.listener.Listen(bgCtx); err != nil {
					a.logger.Err(err).Str("func", "App.run").Msg("host event stream stopped")
				}
			}()
		}),
		workers.Func(func() {
			a.services.SyncJob.Start(bgCtx, session, a.cfg.Workers.SyncInterval)
		}),
		workers.Func(func() {
			if !session.IsCloudLinked() {
				return
			}
			a.detached.Go("instances.pull", func() error {
				_, err := a.services.Instances.PullFromCloud(bgCtx, session)
				return err
			})
		}),
	)
	background.Run()
	defer a.services.SyncJob.Stop()

	err := a.ui.Run(ctx, session)

	a.flush()
	return err
}

// establishSession exchanges the configured refresh token for a cloud
// session. Without a backend, a token or a successful exchange the
// launcher runs offline.
func (a *App) establishSession(ctx context.Context) models.Session {
	offline := models.OfflineSession(a.cfg.UI.Username)
	if a.auth == nil || a.cfg.Backend.RefreshToken == "" {
		return offline
	}

	session, err := a.auth.ExchangeSession(ctx, a.cfg.Backend.RefreshToken)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.establishSession").Msg("cloud sign-in failed, continuing offline")
		return offline
	}

	a.logger.Info().Str("user_id", session.UserID).Msg("signed in to cloud")
	return session
}

func (a *App) flush() {
	done := make(chan struct{})
	go func() {
		a.detached.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(flushTimeout):
		a.logger.Warn().Str("func", "App.flush").Msg("gave up waiting for background tasks")
	}
}
