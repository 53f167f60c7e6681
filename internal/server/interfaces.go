// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives.
	RunServer()

	// Run blocks until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	Shutdown()
}
