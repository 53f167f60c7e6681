// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Argument decoding errors. Both are reported to the caller as a failed
// ChannelResult with status 400.
var (
	// ErrMissingArgument is returned when an invocation carries fewer
	// positional arguments than the operation requires.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidArgument is returned when a positional argument cannot be
	// decoded into the type the operation expects.
	ErrInvalidArgument = errors.New("invalid argument")

	errHijackUnsupported = errors.New("response writer does not support hijacking")
)
