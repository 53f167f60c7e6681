// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory SQLite DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidHostConfigs indicates a missing host address or timeout.
	ErrInvalidHostConfigs = errors.New("invalid host configuration")
	// ErrInvalidBackendConfigs indicates a backend URL without an anon key.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidWorkerConfigs indicates a negative sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
