// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNoRows is returned by SelectOne when nothing matched.
	ErrNoRows = errors.New("no rows in result set")

	// ErrNoSession is returned when an operation needs a signed-in user.
	ErrNoSession = errors.New("no backend session")

	// ErrRealtimeJoin is returned when the realtime channel refuses a join.
	ErrRealtimeJoin = errors.New("realtime join refused")
)
