// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/events"
	"github.com/MKhiriev/blocklauncher/internal/handler"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/server"
	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/internal/store"
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

	log := logger.NewLogger("blocklauncher-host")
	cfg, err := config.GetHostConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewHostStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	bus := events.NewBus(events.DefaultBuffer, log)
	defer bus.Close()

	services := service.NewHostServices(storages, cfg, bus, log)

	handlers, err := handler.NewHandlers(services, bus, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
