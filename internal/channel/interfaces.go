// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"

	"github.com/MKhiriev/blocklauncher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/channel_mock.go -package=mock

// EventHandler receives the payload of one progress event.
type EventHandler func(ev models.ProgressEvent)

// Channel invokes named operations on the host and subscribes to its
// progress events.
type Channel interface {
	// Invoke runs the operation name with positional args. A non-nil error
	// means the host could not be reached or answered garbage; operation
	// failures come back as a result with Success=false.
	Invoke(ctx context.Context, name string, args ...any) (models.ChannelResult, error)

	// On registers handler for the named event and returns the func that
	// removes it.
	On(event string, handler EventHandler) (unsubscribe func())
}
