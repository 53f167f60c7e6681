// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

type instanceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewInstanceRepository returns the SQLite-backed [InstanceRepository].
func NewInstanceRepository(db *DB, logger *logger.Logger) InstanceRepository {
	return &instanceRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstance(row rowScanner) (models.Instance, error) {
	var (
		item                 models.Instance
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.GameVersion,
		&item.Loader,
		&item.LoaderVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Instance{}, err
	}

	item.CreatedAt = &createdAt
	item.UpdatedAt = &updatedAt
	return item, nil
}

func (r *instanceRepository) List(ctx context.Context) ([]models.Instance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectInstancesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "instanceRepository.List").
			Msg("failed to execute query for getting instances")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Instance, 0)
	for rows.Next() {
		item, scanErr := scanInstance(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "instanceRepository.List").
				Msg("failed to scan instance row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "instanceRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *instanceRepository) Get(ctx context.Context, name string) (models.Instance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectInstanceByNameQuery(name)
	if err != nil {
		return models.Instance{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanInstance(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Instance{}, fmt.Errorf("%w: instance %q", ErrNotFound, name)
	}
	if err != nil {
		log.Err(err).
			Str("func", "instanceRepository.Get").
			Str("name", name).
			Msg("failed to get instance")
		return models.Instance{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *instanceRepository) Save(ctx context.Context, instance models.Instance) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertInstanceQuery(instance, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrInstanceExists, instance.Name)
		}
		log.Err(err).
			Str("func", "instanceRepository.Save").
			Str("id", instance.ID).
			Str("name", instance.Name).
			Msg("failed to upsert instance")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *instanceRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteInstanceQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "instanceRepository.Delete").
			Str("name", name).
			Msg("failed to delete instance")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: instance %q", ErrNotFound, name)
	}

	return nil
}

func (r *instanceRepository) Clear(ctx context.Context) error {
	return clearTable(ctx, r.DB, instanceTable)
}
