// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
)

// documentRepository keeps documents in the SQLite "documents" table.
type documentRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewDocumentRepository returns a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *documentRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildSelectDocumentQuery(key)
	if err != nil {
		r.logger.Err(err).
			Str("func", "documentRepository.Get").
			Str("key", key).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.logger.Err(err).
			Str("func", "documentRepository.Get").
			Str("key", key).
			Msg("failed to query document")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var payload []byte
	err = row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "documentRepository.Get").
			Str("key", key).
			Msg("failed to read document")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return payload, nil
}

func (r *documentRepository) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := buildUpsertDocumentQuery(key, value, r.now())
	if err != nil {
		r.logger.Err(err).
			Str("func", "documentRepository.Put").
			Str("key", key).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "documentRepository.Put").
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to execute upsert for document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *documentRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteDocumentQuery(key)
	if err != nil {
		r.logger.Err(err).
			Str("func", "documentRepository.Delete").
			Str("key", key).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "documentRepository.Delete").
			Str("key", key).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
