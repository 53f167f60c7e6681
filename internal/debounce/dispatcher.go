// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package debounce collapses bursts of input into single queries and makes
// sure only the answer to the latest query reaches the caller.
package debounce

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the quiet period used when none is configured.
const DefaultDelay = 400 * time.Millisecond

// QueryFunc runs one dispatched query.
type QueryFunc[Q, R any] func(ctx context.Context, query Q) (R, error)

// Result is the answer to the dispatch numbered Seq.
type Result[Q, R any] struct {
	Seq   uint64
	Query Q
	Value R
	Err   error
}

// Dispatcher runs a query once input has been quiet for the configured delay.
//
// Every dispatch is numbered. A result is handed to apply only when no later
// dispatch has been issued in the meantime; stale results are dropped.
type Dispatcher[Q, R any] struct {
	delay time.Duration
	query QueryFunc[Q, R]
	apply func(Result[Q, R])

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	timer    *time.Timer
	inputGen uint64
	seq      uint64
	closed   bool

	applyMu sync.Mutex
}

// New returns a dispatcher calling query after delay and delivering fresh
// results to apply. Queries run under ctx, which Close cancels.
func New[Q, R any](ctx context.Context, delay time.Duration, query QueryFunc[Q, R], apply func(Result[Q, R])) *Dispatcher[Q, R] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	ctx, cancel := context.WithCancel(ctx)

	return &Dispatcher[Q, R]{
		delay:  delay,
		query:  query,
		apply:  apply,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Input restarts the quiet period with q as the pending query. It never
// blocks on a running query.
func (d *Dispatcher[Q, R]) Input(q Q) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.inputGen++
	gen := d.inputGen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, q) })
}

// Seq returns the number of the latest dispatch, zero before the first.
func (d *Dispatcher[Q, R]) Seq() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

func (d *Dispatcher[Q, R]) fire(gen uint64, q Q) {
	d.mu.Lock()
	// A timer superseded after it already fired must not dispatch.
	if d.closed || gen != d.inputGen {
		d.mu.Unlock()
		return
	}
	d.seq++
	seq := d.seq
	d.wg.Add(1)
	d.mu.Unlock()

	defer d.wg.Done()
	value, err := d.query(d.ctx, q)
	d.deliver(Result[Q, R]{Seq: seq, Query: q, Value: value, Err: err})
}

func (d *Dispatcher[Q, R]) deliver(res Result[Q, R]) {
	d.applyMu.Lock()
	defer d.applyMu.Unlock()

	d.mu.Lock()
	fresh := !d.closed && res.Seq == d.seq
	d.mu.Unlock()

	if fresh {
		d.apply(res)
	}
}

// Close drops the pending input, cancels running queries and waits for them
// to return. Results arriving after Close are discarded.
func (d *Dispatcher[Q, R]) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}
