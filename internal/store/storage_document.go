// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

// DocumentKey is the single key the application document is stored under.
const DocumentKey = "ordo_rpg_manager_data_v1"

// documentStorage is the default implementation of [DocumentStorage]. It
// serializes the document to JSON and delegates the bytes to a
// [DocumentRepository].
type documentStorage struct {
	repository DocumentRepository
	logger     *logger.Logger
}

// NewDocumentStorage wraps repository in the best-effort document contract.
func NewDocumentStorage(repository DocumentRepository, logger *logger.Logger) DocumentStorage {
	return &documentStorage{
		repository: repository,
		logger:     logger,
	}
}

// Load never fails. Anything other than a well-formed stored document yields
// the default one.
func (s *documentStorage) Load(ctx context.Context) models.Document {
	raw, err := s.repository.Get(ctx, DocumentKey)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			s.logger.Info().Str("func", "documentStorage.Load").Msg("no stored document, starting fresh")
		} else {
			s.logger.Err(err).Str("func", "documentStorage.Load").Msg("failed to read stored document, starting fresh")
		}
		return models.DefaultDocument()
	}

	var doc models.Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		s.logger.Err(err).
			Str("func", "documentStorage.Load").
			Int("bytes", len(raw)).
			Msg("stored document is corrupt, starting fresh")
		return models.DefaultDocument()
	}

	return doc.Normalize()
}

// Save writes doc in full. Failures are logged and dropped so the in-memory
// state stays authoritative.
func (s *documentStorage) Save(ctx context.Context, doc models.Document) {
	raw, err := json.Marshal(doc)
	if err != nil {
		s.logger.Err(err).Str("func", "documentStorage.Save").Msg("failed to encode document")
		return
	}

	if err = s.repository.Put(ctx, DocumentKey, raw); err != nil {
		s.logger.Err(err).Str("func", "documentStorage.Save").Msg("failed to persist document")
		return
	}

	s.logger.Debug().Str("func", "documentStorage.Save").Int("bytes", len(raw)).Msg("document persisted")
}

func (s *documentStorage) Reset(ctx context.Context) error {
	if err := s.repository.Delete(ctx, DocumentKey); err != nil {
		s.logger.Err(err).Str("func", "documentStorage.Reset").Msg("failed to delete stored document")
		return err
	}
	return nil
}
