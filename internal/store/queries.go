// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/blocklauncher/models"
)

const (
	configTable   = "config_entries"
	instanceTable = "instances"
	modTable      = "mods"
)

// sqlite builds statements with "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var instanceColumns = []string{
	"id",
	"name",
	"game_version",
	"loader",
	"loader_version",
	"created_at",
	"updated_at",
}

var modColumns = []string{
	"instance_name",
	"file_name",
	"name",
	"enabled",
}

func buildSelectConfigQuery() (string, []any, error) {
	return sqlite.Select("key", "value").
		From(configTable).
		OrderBy("key").
		ToSql()
}

func buildUpsertConfigQuery(key string, value json.RawMessage, now time.Time) (string, []any, error) {
	return sqlite.Insert(configTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), now).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteConfigQuery(key string) (string, []any, error) {
	return sqlite.Delete(configTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildClearQuery(table string) (string, []any, error) {
	return sqlite.Delete(table).ToSql()
}

func buildSelectInstancesQuery() (string, []any, error) {
	return sqlite.Select(instanceColumns...).
		From(instanceTable).
		OrderBy("name").
		ToSql()
}

func buildSelectInstanceByNameQuery(name string) (string, []any, error) {
	return sqlite.Select(instanceColumns...).
		From(instanceTable).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
}

func buildUpsertInstanceQuery(instance models.Instance, now time.Time) (string, []any, error) {
	createdAt := now
	if instance.CreatedAt != nil {
		createdAt = *instance.CreatedAt
	}

	return sqlite.Insert(instanceTable).
		Columns(instanceColumns...).
		Values(
			instance.ID,
			instance.Name,
			instance.GameVersion,
			instance.Loader,
			instance.LoaderVersion,
			createdAt,
			now,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			game_version = excluded.game_version,
			loader = excluded.loader,
			loader_version = excluded.loader_version,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildDeleteInstanceQuery(name string) (string, []any, error) {
	return sqlite.Delete(instanceTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSelectModsQuery(instanceName string) (string, []any, error) {
	return sqlite.Select(modColumns...).
		From(modTable).
		Where(sq.Eq{"instance_name": instanceName}).
		OrderBy("file_name").
		ToSql()
}

func buildUpsertModQuery(mod models.Mod) (string, []any, error) {
	return sqlite.Insert(modTable).
		Columns(modColumns...).
		Values(mod.InstanceName, mod.FileName, mod.Name, mod.Enabled).
		Suffix("ON CONFLICT (instance_name, file_name) DO UPDATE SET name = excluded.name, enabled = excluded.enabled").
		ToSql()
}

func buildSetModEnabledQuery(instanceName, fileName string, enabled bool) (string, []any, error) {
	return sqlite.Update(modTable).
		Set("enabled", enabled).
		Where(sq.And{
			sq.Eq{"instance_name": instanceName},
			sq.Eq{"file_name": fileName},
		}).
		ToSql()
}

func buildDeleteModQuery(instanceName, fileName string) (string, []any, error) {
	return sqlite.Delete(modTable).
		Where(sq.And{
			sq.Eq{"instance_name": instanceName},
			sq.Eq{"file_name": fileName},
		}).
		ToSql()
}
