// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/blocklauncher/internal/logger"
)

// Detached runs fire-and-forget tasks. The caller never waits for a task and
// never sees its error; failures, panics included, go to the sink.
type Detached struct {
	wg   sync.WaitGroup
	sink ErrorSink
}

// NewDetached returns a runner reporting to sink. A nil sink discards errors.
func NewDetached(sink ErrorSink) *Detached {
	if sink == nil {
		sink = func(string, error) {}
	}
	return &Detached{sink: sink}
}

// Go starts fn in its own goroutine and returns immediately.
func (d *Detached) Go(task string, fn func() error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.sink(task, fmt.Errorf("panic: %v", r))
			}
		}()

		if err := fn(); err != nil {
			d.sink(task, err)
		}
	}()
}

// Wait blocks until every task started so far has finished.
func (d *Detached) Wait() {
	d.wg.Wait()
}

// LogSink returns a sink that logs failed tasks as warnings.
func LogSink(log *logger.Logger) ErrorSink {
	return func(task string, err error) {
		log.Warn().Err(err).
			Str("func", "workers.Detached").
			Str("task", task).
			Msg("background task failed")
	}
}
