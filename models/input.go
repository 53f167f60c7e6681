// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxTextureBytes caps skin and cape uploads.
const MaxTextureBytes = 1 << 20

// TextureKind selects the storage bucket of an upload.
type TextureKind string

const (
	TextureSkin TextureKind = "skins"
	TextureCape TextureKind = "capes"
)

// FriendRequestInput is what the user typed to add a friend.
type FriendRequestInput struct {
	Username string `json:"username" validate:"required,min=3,max=16,username"`
}

// TextureUpload is a skin or cape picked from disk.
type TextureUpload struct {
	Kind     TextureKind `json:"kind" validate:"required,oneof=skins capes"`
	FileName string      `json:"file_name" validate:"required,png"`
	Size     int         `json:"size" validate:"gt=0,lte=1048576"`
}

// ShareRequest sends one instance to a friend.
type ShareRequest struct {
	InstanceName string `json:"instance_name" validate:"required,max=64"`
	ReceiverID   string `json:"receiver_id" validate:"required"`
}

// ImportRequest lists the external versions to import as instances.
type ImportRequest struct {
	VersionIDs []string `json:"version_ids" validate:"required,min=1,dive,required,excludesall=/\\"`
}
