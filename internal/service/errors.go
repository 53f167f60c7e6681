// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/blocklauncher/models"
)

// Host-side errors.
var (
	ErrUnknownConfigKey = models.ErrUnknownConfigKey
	ErrInvalidRAMBounds = models.ErrInvalidRAMBounds

	ErrInvalidResetMode          = errors.New("invalid reset mode")
	ErrEmptyPath                 = errors.New("path must not be empty")
	ErrJavaRuntimeNotFound       = errors.New("java runtime not found")
	ErrExternalDirNotConfigured  = errors.New("external launcher directory is not configured")
	ErrNoVersionsSelected        = errors.New("no versions selected for import")
	ErrExternalVersionNotFound   = errors.New("external version manifest not found")
	ErrInstanceNameRequired      = errors.New("instance name is required")
	ErrInstanceGameVersionNeeded = errors.New("instance game version is required")
)

// Launcher-side errors.
var (
	ErrSessionExpired     = errors.New("session expired, sign in again")
	ErrSettingsLoadFailed = errors.New("failed to load settings")
	ErrSettingsNotReady   = errors.New("settings are not loaded")
	ErrUsernameNotFound   = errors.New("username not found")
	ErrCannotBefriendSelf = errors.New("cannot send a friend request to yourself")
	ErrRequestNotSent     = errors.New("friend request was not sent")
	ErrShareNotFound      = errors.New("shared instance not found")
	ErrCloudUnavailable   = errors.New("cloud features require a linked account")
	ErrNoInstanceLoaded   = errors.New("no instance loaded")
	ErrInstanceNotFound   = errors.New("instance not found")
	ErrFriendActionFailed = errors.New("friend action failed")
	ErrShareFailed        = errors.New("instance was not shared")
	ErrUploadFailed       = errors.New("upload failed")

	errMirrorFailed        = errors.New("cloud mirror failed")
	errFriendsReloadFailed = errors.New("friends reload is missing the kept friendship")
)
