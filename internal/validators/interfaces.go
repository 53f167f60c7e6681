// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators rejects invalid user input before any call is issued.
//
// Rules live as `validate` struct tags on the input types of package models
// and are enforced with go-playground/validator. Failures are reported as
// the sentinels of this package so callers can match them with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
