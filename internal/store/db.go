// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/migrations"
)

const (
	execAttempts = 3
	execBackoff  = 50 * time.Millisecond
)

// DB wraps the host SQLite connection together with the error classifier
// used to decide whether a failed write may be attempted again.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// exec runs a DML statement, retrying while SQLite reports the database as
// busy or locked by another connection.
func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)

	for attempt := 1; attempt <= execAttempts; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return res, err
		}

		if attempt == execAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(execBackoff * time.Duration(attempt)):
		}
	}

	return res, err
}
