// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/state_mock.go -package=mock

// IDGenerator produces unique identifiers for new entities.
type IDGenerator interface {
	Generate() string
}

// Persister is the storage contract the [Store] relies on. Both methods are
// best-effort: Load falls back to a default document and Save reports
// nothing, so a storage outage never blocks an intent.
type Persister interface {
	// Load returns the stored document, or the default one when nothing
	// usable is stored.
	Load(ctx context.Context) models.Document

	// Save overwrites the stored document with doc.
	Save(ctx context.Context, doc models.Document)
}

// Transition computes the next document from the current one.
type Transition func(doc models.Document) (models.Document, error)
