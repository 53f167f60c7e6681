// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blocklauncher/internal/config"
	"github.com/MKhiriev/blocklauncher/internal/logger"
)

// HostStorages groups the repositories backed by the host SQLite database.
type HostStorages struct {
	ConfigRepository   ConfigRepository
	InstanceRepository InstanceRepository
	ModRepository      ModRepository

	db *DB
}

// NewHostStorages opens the SQLite file named in cfg.DB.DSN, runs the
// pending migrations and wires the repositories.
func NewHostStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*HostStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &HostStorages{
		ConfigRepository:   NewConfigRepository(db, logger),
		InstanceRepository: NewInstanceRepository(db, logger),
		ModRepository:      NewModRepository(db, logger),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *HostStorages) Close() error {
	return s.db.Close()
}
