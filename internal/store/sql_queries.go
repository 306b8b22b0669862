// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	documentsTable   = "documents"
	columnDocKey     = "doc_key"
	columnPayload    = "payload"
	columnUpdatedAt  = "updated_at"
	upsertOnConflict = "ON CONFLICT(doc_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at"
)

// SQLite uses "?" placeholders.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelectDocumentQuery selects the payload stored under key.
func buildSelectDocumentQuery(key string) (string, []any, error) {
	return sqlBuilder.
		Select(columnPayload).
		From(documentsTable).
		Where(sq.Eq{columnDocKey: key}).
		Limit(1).
		ToSql()
}

// buildUpsertDocumentQuery inserts the record or overwrites the existing one.
func buildUpsertDocumentQuery(key string, payload []byte, updatedAt time.Time) (string, []any, error) {
	return sqlBuilder.
		Insert(documentsTable).
		Columns(columnDocKey, columnPayload, columnUpdatedAt).
		Values(key, payload, updatedAt.UTC()).
		Suffix(upsertOnConflict).
		ToSql()
}

// buildDeleteDocumentQuery deletes the record stored under key.
func buildDeleteDocumentQuery(key string) (string, []any, error) {
	return sqlBuilder.
		Delete(documentsTable).
		Where(sq.Eq{columnDocKey: key}).
		ToSql()
}
