// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/adapter"
	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/internal/utils"
	"github.com/MKhiriev/blocklauncher/internal/validators"
	"github.com/MKhiriev/blocklauncher/models"
)

const textureContentType = "image/png"

type skinService struct {
	storage   adapter.ObjectStorage
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

// NewSkinService returns the [SkinService] backed by storage.
func NewSkinService(storage adapter.ObjectStorage, validator validators.Validator, logger *logger.Logger) SkinService {
	return &skinService{
		storage:   storage,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

func textureKey(userID string) string {
	return userID + ".png"
}

func (s *skinService) UploadSkin(ctx context.Context, session models.Session, path string) (string, error) {
	return s.upload(ctx, session, models.TextureSkin, path)
}

func (s *skinService) UploadCape(ctx context.Context, session models.Session, path string) (string, error) {
	return s.upload(ctx, session, models.TextureCape, path)
}

func (s *skinService) upload(ctx context.Context, session models.Session, kind models.TextureKind, path string) (string, error) {
	log := logger.FromContext(ctx)

	if !session.IsCloudLinked() {
		return "", ErrCloudUnavailable
	}
	if err := s.checkSession(session); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat texture: %w", err)
	}
	upload := models.TextureUpload{Kind: kind, FileName: filepath.Base(path), Size: int(info.Size())}
	if err = s.validator.Validate(ctx, upload); err != nil {
		return "", err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read texture: %w", err)
	}

	bucket, key := string(kind), textureKey(session.UserID)
	if err = s.storage.Upload(ctx, bucket, key, body, textureContentType); err != nil {
		log.Err(err).
			Str("func", "skinService.upload").
			Str("bucket", bucket).
			Msg("texture upload failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return s.storage.PublicURL(bucket, key), nil
}

// checkSession rejects uploads with an expired access token. Tokens that
// cannot be parsed fall back to the session's own expiry.
func (s *skinService) checkSession(session models.Session) error {
	claims, err := utils.ParseSessionClaims(session.AccessToken)
	if err != nil {
		if !session.Active(s.now()) {
			return ErrSessionExpired
		}
		return nil
	}
	if claims.Expired(s.now()) {
		return ErrSessionExpired
	}
	return nil
}

func (s *skinService) TextureURL(ctx context.Context, kind models.TextureKind, userID string) (string, bool) {
	if userID == "" {
		return "", false
	}

	bucket, key := string(kind), textureKey(userID)
	ok, err := s.storage.Exists(ctx, bucket, key)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "skinService.TextureURL").
			Str("bucket", bucket).
			Msg("texture lookup failed")
		return "", false
	}
	if !ok {
		return "", false
	}
	return s.storage.PublicURL(bucket, key), true
}
