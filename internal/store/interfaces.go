// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository is a low-level key/value store for serialized
// documents. Both the SQLite and the JSON file backends implement it.
type DocumentRepository interface {
	// Get returns the bytes stored under key, or ErrDocumentNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces whatever is stored under key with value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// DocumentStorage persists the whole application document under
// [DocumentKey]. Load and Save never fail from the caller's point of view:
// problems are logged and the caller keeps working on in-memory state.
type DocumentStorage interface {
	// Load returns the stored document, or models.DefaultDocument when the
	// record is missing, unreadable or not a document.
	Load(ctx context.Context) models.Document

	// Save overwrites the stored record with doc.
	Save(ctx context.Context, doc models.Document)

	// Reset removes the stored record so the next Load starts from scratch.
	Reset(ctx context.Context) error
}
