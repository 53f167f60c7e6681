// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

type modRepository struct {
	*DB
	logger *logger.Logger
}

// NewModRepository returns the SQLite-backed [ModRepository].
func NewModRepository(db *DB, logger *logger.Logger) ModRepository {
	return &modRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *modRepository) List(ctx context.Context, instanceName string) ([]models.Mod, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectModsQuery(instanceName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "modRepository.List").
			Str("instance", instanceName).
			Msg("failed to execute query for getting mods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	mods := make([]models.Mod, 0)
	for rows.Next() {
		var mod models.Mod
		if scanErr := rows.Scan(&mod.InstanceName, &mod.FileName, &mod.Name, &mod.Enabled); scanErr != nil {
			log.Err(scanErr).
				Str("func", "modRepository.List").
				Str("instance", instanceName).
				Msg("failed to scan mod row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		mods = append(mods, mod)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return mods, nil
}

func (m *modRepository) Save(ctx context.Context, mod models.Mod) error {
	query, args, err := buildUpsertModQuery(mod)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = m.exec(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "modRepository.Save").
			Str("instance", mod.InstanceName).
			Str("file", mod.FileName).
			Msg("failed to upsert mod")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (m *modRepository) SetEnabled(ctx context.Context, instanceName, fileName string, enabled bool) error {
	query, args, err := buildSetModEnabledQuery(instanceName, fileName, enabled)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.execExpectingRow(ctx, "modRepository.SetEnabled", instanceName, fileName, query, args)
}

func (m *modRepository) Delete(ctx context.Context, instanceName, fileName string) error {
	query, args, err := buildDeleteModQuery(instanceName, fileName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.execExpectingRow(ctx, "modRepository.Delete", instanceName, fileName, query, args)
}

func (m *modRepository) Clear(ctx context.Context) error {
	return clearTable(ctx, m.DB, modTable)
}

func (m *modRepository) execExpectingRow(ctx context.Context, fn, instanceName, fileName, query string, args []any) error {
	res, err := m.exec(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Str("instance", instanceName).
			Str("file", fileName).
			Msg("failed to execute mod statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: mod %s/%s", ErrNotFound, instanceName, fileName)
	}

	return nil
}
