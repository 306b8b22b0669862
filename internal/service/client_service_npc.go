// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/MKhiriev/go-ordo-keeper/internal/adapter"
	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/state"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

type clientNPCService struct {
	store     *state.Store
	engine    *state.Engine
	generator adapter.NPCGenerator

	pending atomic.Bool

	logger *logger.Logger
}

func NewClientNPCService(st *state.Store, engine *state.Engine, generator adapter.NPCGenerator, logger *logger.Logger) ClientNPCService {
	return &clientNPCService{store: st, engine: engine, generator: generator, logger: logger}
}

// Generate implements [ClientNPCService].
//
// The ruleset is captured before the remote call and the draft is merged with
// that ruleset even if the user switches systems meanwhile. The store is not
// held during the call, so other intents keep flowing.
func (n *clientNPCService) Generate(ctx context.Context) (*models.Character, error) {
	if !n.pending.CompareAndSwap(false, true) {
		return nil, ErrGenerationInProgress
	}
	defer n.pending.Store(false)

	doc := n.store.Snapshot()
	if doc.CurrentUser == nil {
		return nil, state.ErrNotAuthenticated
	}

	systemID := doc.CurrentSystemID
	systemName := models.SystemName(systemID)
	log := n.logger.With().
		Str("func", "clientNPCService.Generate").
		Str("system", systemID).
		Logger()

	draft, err := n.generator.GenerateNPC(ctx, systemName, doc.CurrentUser.ID)
	if err != nil {
		if errors.Is(err, adapter.ErrGeneratorDisabled) {
			log.Warn().Msg("api key not found, npc generation disabled")
		} else {
			log.Error().Err(err).Msg("error generating npc")
		}
		return nil, nil
	}
	if draft == nil {
		log.Warn().Msg("generator returned no draft")
		return nil, nil
	}

	next, err := n.store.Apply(ctx, "npc.merge", func(doc models.Document) (models.Document, error) {
		return n.engine.MergeGeneratedNPC(doc, draft, systemID)
	})
	if err != nil {
		log.Error().Err(err).Msg("error merging generated npc")
		return nil, nil
	}

	created := next.Characters[len(next.Characters)-1]
	log.Info().Str("character_id", created.ID).Msg("npc generated")

	return &created, nil
}

func (n *clientNPCService) Pending() bool {
	return n.pending.Load()
}
