// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the launcher's background work: long-lived workers
// started once at boot and detached one-shot tasks whose failures are
// reported to an error sink instead of the caller.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Func adapts an ordinary function to [Worker].
type Func func()

func (f Func) Run() {
	f()
}

// ErrorSink receives the error of a failed detached task.
type ErrorSink func(task string, err error)
