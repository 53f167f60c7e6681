// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package optimistic keeps a list of keyed items whose mutations are shown
// before the backing operation confirms them.
//
// A mutation is applied synchronously, its backing operation runs in the
// background, and on failure the list is put back: a toggle restores the
// exact item it replaced, a removal reloads the list from its source. Only
// one mutation per item may be outstanding.
package optimistic

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var (
	// ErrItemNotFound is returned when no item has the requested key.
	ErrItemNotFound = errors.New("item not found")
	// ErrMutationInFlight is returned when the item already has an
	// outstanding mutation.
	ErrMutationInFlight = errors.New("mutation already in flight for item")
)

// Op is the backing operation of a mutation. It receives the item as it was
// after (toggle) or before (removal) the optimistic change.
type Op[T any] func(ctx context.Context, item T) error

// Loader reloads the full list from its source.
type Loader[T any] func(ctx context.Context) ([]T, error)

// List is safe for concurrent use. Items always returns a copy.
type List[K comparable, T any] struct {
	key func(T) K

	mu       sync.Mutex
	items    []T
	inFlight map[K]struct{}
	onChange func([]T)
}

// NewList returns a list identifying items by key.
func NewList[K comparable, T any](key func(T) K, items []T) *List[K, T] {
	return &List[K, T]{
		key:      key,
		items:    slices.Clone(items),
		inFlight: map[K]struct{}{},
	}
}

// OnChange registers fn to be called with a copy of the items after every
// change. It replaces any earlier callback.
func (l *List[K, T]) OnChange(fn func([]T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// Items returns a copy of the current items.
func (l *List[K, T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// Replace swaps in a freshly loaded list. Outstanding mutations keep their
// guards.
func (l *List[K, T]) Replace(items []T) {
	l.mu.Lock()
	l.items = slices.Clone(items)
	l.mu.Unlock()
	l.changed()
}

// InFlight reports whether key has an outstanding mutation.
func (l *List[K, T]) InFlight(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.inFlight[key]
	return ok
}

// Toggle replaces the item keyed by key with transform(item) right away and
// runs op with the new item in the background. If op fails the item goes
// back to its exact previous value.
//
// The returned channel receives op's error (nil on success) once the list
// has settled, and is then closed.
func (l *List[K, T]) Toggle(ctx context.Context, key K, transform func(T) T, op Op[T]) (<-chan error, error) {
	l.mu.Lock()
	idx, err := l.begin(key)
	if err != nil {
		l.mu.Unlock()
		return nil, err
	}
	before := l.items[idx]
	after := transform(before)
	l.items[idx] = after
	l.mu.Unlock()
	l.changed()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		opErr := op(ctx, after)

		l.mu.Lock()
		if opErr != nil {
			if i := l.indexOf(key); i >= 0 {
				l.items[i] = before
			}
		}
		delete(l.inFlight, key)
		l.mu.Unlock()

		if opErr != nil {
			l.changed()
		}
		done <- opErr
	}()

	return done, nil
}

// Remove drops the item keyed by key right away and runs op with the removed
// item in the background. If op fails the list is reloaded with reload; when
// reload is nil or fails too, the item is put back where it was.
//
// The returned channel behaves as the one of [List.Toggle].
func (l *List[K, T]) Remove(ctx context.Context, key K, op Op[T], reload Loader[T]) (<-chan error, error) {
	l.mu.Lock()
	idx, err := l.begin(key)
	if err != nil {
		l.mu.Unlock()
		return nil, err
	}
	removed := l.items[idx]
	l.items = slices.Delete(l.items, idx, idx+1)
	l.mu.Unlock()
	l.changed()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		opErr := op(ctx, removed)

		var fresh []T
		reloaded := false
		if opErr != nil && reload != nil {
			if items, loadErr := reload(ctx); loadErr == nil {
				fresh, reloaded = items, true
			}
		}

		l.mu.Lock()
		switch {
		case opErr == nil:
		case reloaded:
			l.items = slices.Clone(fresh)
		case l.indexOf(key) < 0:
			l.items = slices.Insert(l.items, min(idx, len(l.items)), removed)
		}
		delete(l.inFlight, key)
		l.mu.Unlock()

		if opErr != nil {
			l.changed()
		}
		done <- opErr
	}()

	return done, nil
}

// begin marks key as in flight and returns its index. l.mu must be held.
func (l *List[K, T]) begin(key K) (int, error) {
	if _, busy := l.inFlight[key]; busy {
		return -1, ErrMutationInFlight
	}
	idx := l.indexOf(key)
	if idx < 0 {
		return -1, ErrItemNotFound
	}
	l.inFlight[key] = struct{}{}
	return idx, nil
}

func (l *List[K, T]) indexOf(key K) int {
	return slices.IndexFunc(l.items, func(item T) bool { return l.key(item) == key })
}

func (l *List[K, T]) changed() {
	l.mu.Lock()
	fn := l.onChange
	items := slices.Clone(l.items)
	l.mu.Unlock()

	if fn != nil {
		fn(items)
	}
}
