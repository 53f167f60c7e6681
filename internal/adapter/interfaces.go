// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/blocklauncher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TableClient reads and writes rows of the hosted backend's tables.
// Implementations map transport failures to the sentinels of this package.
type TableClient interface {
	// Select decodes every row matching q into out, a pointer to a slice.
	Select(ctx context.Context, table string, q Query, out any) error

	// SelectOne decodes the single row matching q into out. It returns
	// [ErrNoRows] when nothing matched.
	SelectOne(ctx context.Context, table string, q Query, out any) error

	// Insert adds rows, a struct or a slice of structs.
	Insert(ctx context.Context, table string, rows any) error

	// Upsert inserts rows or merges them into the rows that collide on the
	// comma separated onConflict columns.
	Upsert(ctx context.Context, table string, rows any, onConflict string) error

	// Update applies patch to every row matching q.
	Update(ctx context.Context, table string, q Query, patch any) error

	// Delete removes every row matching q.
	Delete(ctx context.Context, table string, q Query) error
}

// AuthClient establishes the backend session.
type AuthClient interface {
	// ExchangeSession trades a refresh token for a fresh session and makes
	// its access token the bearer of later requests.
	ExchangeSession(ctx context.Context, refreshToken string) (models.Session, error)

	// Session returns the last session established, if any.
	Session() (models.Session, bool)
}

// ObjectStorage stores public files such as skins and capes.
type ObjectStorage interface {
	// Upload writes body under bucket/key, overwriting an existing object.
	Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error

	// PublicURL returns the address the object is served from.
	PublicURL(bucket, key string) string

	// Exists reports whether the object is publicly reachable.
	Exists(ctx context.Context, bucket, key string) (bool, error)
}

// Realtime subscribes to row changes of a table.
type Realtime interface {
	// Subscribe calls handler for every change of table matching filter
	// ("receiver_id=eq.<id>", empty for all rows) until unsubscribe is
	// called or ctx is done.
	Subscribe(ctx context.Context, table, filter string, handler ChangeHandler) (unsubscribe func(), err error)
}
