// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import "errors"

var (
	// ErrOperationFailed wraps the message of a result with Success=false.
	ErrOperationFailed = errors.New("operation failed")

	// ErrUnknownChannel is returned when the host has no operation by that name.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrHostUnavailable is returned when the host cannot be reached or its
	// answer is not a channel result.
	ErrHostUnavailable = errors.New("host unavailable")
)
