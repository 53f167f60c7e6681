// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/blocklauncher/internal/logger"
	"github.com/MKhiriev/blocklauncher/models"
)

func newTestInstanceRepo(t *testing.T) (*instanceRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &instanceRepository{DB: db, logger: logger.Nop(), now: func() time.Time { return fixedNow }}, mock
}

func instanceRows() *sqlmock.Rows {
	return sqlmock.NewRows(instanceColumns)
}

// ── List ──

func TestInstanceRepository_List(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)
	query, _, _ := buildSelectInstancesQuery()

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(instanceRows().
			AddRow("id-1", "Fabric", "1.20.4", "fabric", "0.15.0", fixedNow, fixedNow).
			AddRow("id-2", "Vanilla", "1.21", "", "", fixedNow, fixedNow))

	items, err := repo.List(testContext())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Fabric", items[0].Name)
	assert.Equal(t, "fabric", items[0].Loader)
	assert.Equal(t, "Vanilla", items[1].Name)
	require.NotNil(t, items[1].UpdatedAt)
	assert.True(t, fixedNow.Equal(*items[1].UpdatedAt))
}

func TestInstanceRepository_List_Empty(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)
	query, _, _ := buildSelectInstancesQuery()

	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(instanceRows())

	items, err := repo.List(testContext())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// ── Get ──

func TestInstanceRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)
	query, _, _ := buildSelectInstanceByNameQuery("Missing")

	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Missing").WillReturnRows(instanceRows())

	_, err := repo.Get(testContext(), "Missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInstanceRepository_Get(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)
	query, _, _ := buildSelectInstanceByNameQuery("Vanilla")

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Vanilla").
		WillReturnRows(instanceRows().AddRow("id-2", "Vanilla", "1.21", "", "", fixedNow, fixedNow))

	item, err := repo.Get(testContext(), "Vanilla")

	require.NoError(t, err)
	assert.Equal(t, "id-2", item.ID)
	assert.Equal(t, "1.21", item.GameVersion)
}

// ── Save ──

func TestInstanceRepository_Save(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)
	inst := models.Instance{ID: "id-1", Name: "Vanilla", GameVersion: "1.21"}
	query, _, _ := buildUpsertInstanceQuery(inst, fixedNow)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("id-1", "Vanilla", "1.21", "", "", fixedNow, fixedNow).
		WillReturnResult(rowsAffected(1))

	require.NoError(t, repo.Save(testContext(), inst))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInstanceRepository_Save_NameTaken(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)

	mock.ExpectExec("INSERT INTO instances").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	err := repo.Save(testContext(), models.Instance{ID: "id-9", Name: "Vanilla"})

	assert.ErrorIs(t, err, ErrInstanceExists)
}

func TestInstanceRepository_Save_GivesUpAfterBusyRetries(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)

	for range execAttempts {
		mock.ExpectExec("INSERT INTO instances").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	err := repo.Save(testContext(), models.Instance{ID: "id-1", Name: "Vanilla"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Delete ──

func TestInstanceRepository_Delete(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM instances WHERE name = ?")).
		WithArgs("Vanilla").
		WillReturnResult(rowsAffected(1))

	require.NoError(t, repo.Delete(testContext(), "Vanilla"))
}

func TestInstanceRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM instances WHERE name = ?")).
		WithArgs("Missing").
		WillReturnResult(rowsAffected(0))

	assert.ErrorIs(t, repo.Delete(testContext(), "Missing"), ErrNotFound)
}

func TestInstanceRepository_Delete_Error(t *testing.T) {
	repo, mock := newTestInstanceRepo(t)

	mock.ExpectExec("DELETE FROM instances").WillReturnError(errors.New("io"))

	assert.ErrorIs(t, repo.Delete(testContext(), "Vanilla"), ErrExecutingStatement)
}
