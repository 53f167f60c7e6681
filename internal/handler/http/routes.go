// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Post("/api/invoke/{channel}", h.invoke)
	router.Get("/api/events", h.streamEvents)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
