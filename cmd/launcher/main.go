// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/channel"
	"github.com/MKhiriev/blocklauncher/internal/client"
	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/gateway"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/internal/tui"
	"github.com/MKhiriev/blocklauncher/internal/workers"
	"github.com/MKhiriev/blocklauncher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetLauncherConfig()
	if err != nil {
		logger.NewLogger("blocklauncher").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("blocklauncher", cfg.UI.LogDir)
	log.Debug().Str("host", cfg.Host.Address).Bool("cloud", cfg.CloudEnabled()).Msg("received configs")

	hostChannel, err := channel.NewHTTPChannel(cfg.Host, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating host channel")
	}

	detached := workers.NewDetached(workers.LogSink(log))
	deps := service.ClientDeps{
		Channel:  hostChannel,
		Detached: detached,
	}

	// Without a backend every session is offline and the cloud
	// dependencies stay nil; services never reach them.
	var auth adapter.AuthClient
	if cfg.CloudEnabled() {
		backend, err := adapter.NewClient(cfg.Backend, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating backend client")
		}

		auth = adapter.NewAuthClient(backend)
		deps.Gateway = gateway.NewGateway(adapter.NewTableClient(backend), log)
		deps.Storage = adapter.NewObjectStorage(backend)
		deps.Realtime = adapter.NewRealtime(backend)
	}

	services := service.NewClientServices(deps, log)
	ui := tui.New(services, buildInfo, cfg.UI.DebounceInterval, log)

	app, err := client.NewApp(cfg, services, hostChannel, auth, ui, detached, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating launcher")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("launcher stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
