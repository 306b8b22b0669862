// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/state"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

type clientCharacterService struct {
	store  *state.Store
	engine *state.Engine
	logger *logger.Logger
}

func NewClientCharacterService(st *state.Store, engine *state.Engine, logger *logger.Logger) ClientCharacterService {
	return &clientCharacterService{store: st, engine: engine, logger: logger}
}

// Create implements [ClientCharacterService]. The new character is the last
// one in the document after the transition.
func (c *clientCharacterService) Create(ctx context.Context, name string) (models.Character, error) {
	doc, err := c.store.Apply(ctx, "character.create", func(doc models.Document) (models.Document, error) {
		return c.engine.CreateCharacter(doc, name, doc.CurrentUser)
	})
	if err != nil {
		return models.Character{}, err
	}

	created := doc.Characters[len(doc.Characters)-1]
	c.logger.Debug().
		Str("func", "clientCharacterService.Create").
		Str("character_id", created.ID).
		Str("type", string(created.Type)).
		Msg("character created")

	return created, nil
}

func (c *clientCharacterService) Delete(ctx context.Context, characterID string) error {
	_, err := c.store.Apply(ctx, "character.delete", func(doc models.Document) (models.Document, error) {
		return c.engine.DeleteCharacter(doc, characterID)
	})
	return err
}

func (c *clientCharacterService) ChangeOwner(ctx context.Context, characterID, newOwnerID string) error {
	_, err := c.store.Apply(ctx, "character.change_owner", func(doc models.Document) (models.Document, error) {
		return c.engine.ChangeOwner(doc, characterID, newOwnerID)
	})
	return err
}

func (c *clientCharacterService) ToggleType(ctx context.Context, characterID string) error {
	_, err := c.store.Apply(ctx, "character.toggle_type", func(doc models.Document) (models.Document, error) {
		return c.engine.ToggleType(doc, characterID)
	})
	return err
}

func (c *clientCharacterService) Visible() []models.Character {
	doc := c.store.Snapshot()
	return state.VisibleCharacters(doc, doc.CurrentUser)
}

func (c *clientCharacterService) OwnerName(ownerID string) string {
	return state.OwnerName(c.store.Snapshot(), ownerID)
}

func (c *clientCharacterService) SelectSystem(ctx context.Context, systemID string) error {
	_, err := c.store.Apply(ctx, "system.select", func(doc models.Document) (models.Document, error) {
		return c.engine.SelectSystem(doc, systemID)
	})
	return err
}

// CurrentSystem implements [ClientCharacterService]. A ruleset id missing from
// the registry is reported under the generic name.
func (c *clientCharacterService) CurrentSystem() models.GameSystem {
	id := c.store.Snapshot().CurrentSystemID
	if system, ok := models.FindGameSystem(id); ok {
		return system
	}
	return models.GameSystem{ID: id, Name: models.SystemName(id)}
}

func (c *clientCharacterService) Systems() []models.GameSystem {
	return models.GameSystems()
}
