// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/blocklauncher/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Listener keeps the host event stream open until ctx is done.
type Listener interface {
	Listen(ctx context.Context) error
}

// UI shows the launcher for a session until the user quits.
type UI interface {
	Run(ctx context.Context, session models.Session) error
}
