// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

// Store owns the current document. Intents are applied one at a time.
type Store struct {
	mu        sync.Mutex
	doc       models.Document
	persister Persister
	logger    *logger.Logger
}

// NewStore loads the document through persister and returns a Store holding it.
func NewStore(ctx context.Context, persister Persister, log *logger.Logger) *Store {
	doc := persister.Load(ctx).Normalize()

	log.Debug().
		Str("func", "state.NewStore").
		Int("users", len(doc.Users)).
		Int("characters", len(doc.Characters)).
		Int("sessions", len(doc.Sessions)).
		Msg("document loaded")

	return &Store{
		doc:       doc,
		persister: persister,
		logger:    log,
	}
}

// Apply runs transition against the current document. On success the result
// becomes the current document and is handed to the persister before Apply
// returns. On error nothing changes and nothing is written.
//
// intent only labels log entries.
func (s *Store) Apply(ctx context.Context, intent string, transition Transition) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transition(s.doc.Clone())
	if err != nil {
		s.logger.Debug().
			Str("func", "state.Store.Apply").
			Str("intent", intent).
			Err(err).
			Msg("intent rejected")
		return s.doc.Clone(), err
	}

	s.doc = next
	s.persister.Save(ctx, next.Clone())

	s.logger.Debug().
		Str("func", "state.Store.Apply").
		Str("intent", intent).
		Msg("intent applied")

	return next.Clone(), nil
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}
