// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMissingArgument: http.StatusBadRequest,
	ErrInvalidArgument: http.StatusBadRequest,

	service.ErrUnknownConfigKey:          http.StatusBadRequest,
	service.ErrInvalidRAMBounds:          http.StatusBadRequest,
	service.ErrInvalidResetMode:          http.StatusBadRequest,
	service.ErrEmptyPath:                 http.StatusBadRequest,
	service.ErrJavaRuntimeNotFound:       http.StatusBadRequest,
	service.ErrNoVersionsSelected:        http.StatusBadRequest,
	service.ErrInstanceNameRequired:      http.StatusBadRequest,
	service.ErrInstanceGameVersionNeeded: http.StatusBadRequest,
	service.ErrExternalDirNotConfigured:  http.StatusConflict,
	service.ErrExternalVersionNotFound:   http.StatusNotFound,

	store.ErrNotFound:       http.StatusNotFound,
	store.ErrInstanceExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
