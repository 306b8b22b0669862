// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ordo-keeper/internal/config"
	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
)

// ClientStorages groups the client-side storage components into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// DocumentStorage persists the application document.
	DocumentStorage DocumentStorage

	// closer releases the backend, if it holds any resources.
	closer io.Closer
}

// NewClientStorages initialises the client storage layer.
//
// When cfg.File.Path is set the JSON file backend is used. Otherwise the
// SQLite database at cfg.DB.DSN is opened (and created if missing) and all
// pending migrations are applied.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.File.Path != "" {
		logger.Info().Str("path", cfg.File.Path).Msg("using JSON file storage")
		return &ClientStorages{
			DocumentStorage: NewDocumentStorage(NewFileDocumentRepository(cfg.File.Path, logger), logger),
		}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DocumentStorage: NewDocumentStorage(NewDocumentRepository(db, logger), logger),
		closer:          db,
	}, nil
}

// Close releases the underlying database connection, if any.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
