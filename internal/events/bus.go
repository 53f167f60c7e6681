// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events is the host-side fan-out of progress events. Long-running
// host operations publish to a Bus; every connected event stream holds one
// subscription.
package events

import (
	"sync"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 64

// Bus delivers every published event to all current subscribers. A slow
// subscriber whose queue is full misses events instead of blocking the
// publisher.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan models.Event
	nextID int
	buffer int
	closed bool

	logger *logger.Logger
}

// NewBus creates a Bus with per-subscriber queues of the given size.
func NewBus(buffer int, log *logger.Logger) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	return &Bus{
		subs:   make(map[int]chan models.Event),
		buffer: buffer,
		logger: log,
	}
}

// Publish fans ev out to every subscriber without blocking.
func (b *Bus) Publish(ev models.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.logger.Warn().
				Str("func", "Bus.Publish").
				Int("subscriber", id).
				Str("event", ev.Name).
				Msg("subscriber queue is full, dropping event")
		}
	}
}

// Progress returns a reporter that publishes name events.
func (b *Bus) Progress(name string) func(status string, progress float64) {
	return func(status string, progress float64) {
		b.Publish(models.Event{
			Name:    name,
			Payload: models.ProgressEvent{Status: status, Progress: progress},
		})
	}
}

// Subscribe registers a new subscriber. The returned cancel func removes it
// and closes the channel; calling it more than once is safe.
func (b *Bus) Subscribe() (<-chan models.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan models.Event, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Close ends every subscription. Publishing after Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
