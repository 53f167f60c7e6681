// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/models"
)

// EventSource hands out subscriptions to the progress event stream.
type EventSource interface {
	Subscribe() (<-chan models.Event, func())
}

// Handler serves the local operation channel and the progress event stream.
type Handler struct {
	services *service.HostServices
	events   EventSource
	channels map[string]channelFunc

	logger *logger.Logger
}

func NewHandler(services *service.HostServices, events EventSource, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		events:   events,
		logger:   logger,
	}
	h.channels = h.channelTable()

	logger.Info().Int("channels", len(h.channels)).Msg("http handler created")
	return h
}
