// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername     = errors.New("username must be 3-16 letters, digits or underscores")
	ErrInvalidFileType     = errors.New("only .png files are accepted")
	ErrInvalidFileSize     = errors.New("file must be between 1 byte and 1 MiB")
	ErrInvalidTextureKind  = errors.New("invalid texture kind")
	ErrInvalidInstanceName = errors.New("invalid instance name")
	ErrInvalidReceiver     = errors.New("receiver is required")
	ErrNoVersions          = errors.New("at least one version must be selected")
	ErrInvalidVersionID    = errors.New("invalid version id")
)
