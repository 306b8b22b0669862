// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
)

// fileDocumentRepository keeps every key in a single JSON object on disk:
// {"<key>": <raw document JSON>, ...}. The file is rewritten in full on every
// Put and Delete.
type fileDocumentRepository struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileDocumentRepository returns a [DocumentRepository] writing to path.
// Nothing is touched on disk until the first Put.
func NewFileDocumentRepository(path string, logger *logger.Logger) DocumentRepository {
	return &fileDocumentRepository{
		path:   path,
		logger: logger,
	}
}

func (f *fileDocumentRepository) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		f.logger.Err(err).Str("func", "fileDocumentRepository.Get").Str("path", f.path).Msg("failed to load store file")
		return nil, err
	}

	raw, ok := entries[key]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	return raw, nil
}

func (f *fileDocumentRepository) Put(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !json.Valid(value) {
		return fmt.Errorf("%w: value for %q is not JSON", ErrWritingFile, key)
	}

	entries, err := f.load()
	if err != nil {
		// a corrupt file is replaced rather than blocking every later write
		f.logger.Warn().Err(err).Str("func", "fileDocumentRepository.Put").Str("path", f.path).Msg("discarding unreadable store file")
		entries = make(map[string]json.RawMessage)
	}

	entries[key] = json.RawMessage(value)

	return f.persist(entries)
}

func (f *fileDocumentRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}

	delete(entries, key)

	return f.persist(entries)
}

func (f *fileDocumentRepository) load() (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	if len(data) == 0 {
		return entries, nil
	}

	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrReadingFile, err)
	}
	if entries == nil {
		entries = make(map[string]json.RawMessage)
	}

	return entries, nil
}

func (f *fileDocumentRepository) persist(entries map[string]json.RawMessage) error {
	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir: %w", ErrWritingFile, err)
		}
	}

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWritingFile, err)
	}

	if err = os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return nil
}
