// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/logger"
)

type configRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewConfigRepository returns the SQLite-backed [ConfigRepository].
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	return &configRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (c *configRepository) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectConfigQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "configRepository.GetAll").
			Msg("failed to execute query for getting config entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if scanErr := rows.Scan(&key, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "configRepository.GetAll").
				Msg("failed to scan config entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries[key] = json.RawMessage(value)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "configRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (c *configRepository) Set(ctx context.Context, key string, value json.RawMessage) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertConfigQuery(key, value, c.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.exec(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "configRepository.Set").
			Str("key", key).
			Msg("failed to upsert config entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *configRepository) SetMany(ctx context.Context, entries map[string]json.RawMessage) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "configRepository.SetMany").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := c.now().UTC()
	for key, value := range entries {
		query, args, buildErr := buildUpsertConfigQuery(key, value, now)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "configRepository.SetMany").
				Str("key", key).
				Msg("failed to upsert config entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "configRepository.SetMany").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (c *configRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteConfigQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.exec(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "configRepository.Delete").
			Str("key", key).
			Msg("failed to delete config entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *configRepository) Clear(ctx context.Context) error {
	return clearTable(ctx, c.DB, configTable)
}

func clearTable(ctx context.Context, db *DB, table string) error {
	query, args, err := buildClearQuery(table)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.exec(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.clearTable").
			Str("table", table).
			Msg("failed to clear table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
