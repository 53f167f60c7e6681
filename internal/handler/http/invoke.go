// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/utils"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/go-chi/chi/v5"
)

// invoke runs the operation named by the {channel} URL parameter. Failures
// are answered with success=false and a status derived from the error.
func (h *Handler) invoke(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "channel")

	fn, ok := h.channels[name]
	if !ok {
		log.Warn().Str("func", "*Handler.invoke").Str("channel", name).Msg("unknown channel")
		h.writeResult(w, r, http.StatusNotFound, models.ChannelResult{
			Error: fmt.Sprintf("unknown channel %q", name),
		})
		return
	}

	var req models.InvokeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.invoke").Str("channel", name).Msg("invalid invoke body")
		h.writeResult(w, r, http.StatusBadRequest, models.ChannelResult{Error: "invalid JSON was passed"})
		return
	}

	data, err := fn(r.Context(), req.Args)
	if err != nil {
		log.Err(err).Str("func", "*Handler.invoke").Str("channel", name).Msg("operation failed")
		h.writeResult(w, r, statusFromError(err), models.ChannelResult{Error: err.Error()})
		return
	}

	result := models.ChannelResult{Success: true}
	if data != nil {
		raw, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			log.Err(marshalErr).Str("func", "*Handler.invoke").Str("channel", name).Msg("error encoding result")
			h.writeResult(w, r, http.StatusInternalServerError, models.ChannelResult{Error: "error encoding result"})
			return
		}
		result.Data = raw
	}

	h.writeResult(w, r, http.StatusOK, result)
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, status int, result models.ChannelResult) {
	if _, err := utils.WriteJSON(w, result, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeResult").Msg("error writing channel result")
	}
}
