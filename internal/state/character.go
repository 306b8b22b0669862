// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

// CreateCharacter adds a blank sheet owned by acting. GMs create NPCs and
// players create PCs; the ruleset is the one currently selected.
func (e *Engine) CreateCharacter(doc models.Document, name string, acting *models.User) (models.Document, error) {
	if acting == nil {
		return doc, ErrNotAuthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return doc, ErrEmptyField
	}

	charType := models.CharacterPC
	if acting.IsGM() {
		charType = models.CharacterNPC
	}

	character := models.Character{
		ID:          e.ids.Generate(),
		Name:        name,
		Type:        charType,
		OwnerID:     acting.ID,
		SystemID:    doc.CurrentSystemID,
		Description: models.DefaultDescription,
		Attributes:  models.DefaultAttributes(),
		HP:          models.NewVital(models.DefaultVitalMax),
		San:         models.NewVital(models.DefaultVitalMax),
	}

	next := doc.Clone()
	next.Characters = append(next.Characters, character)

	return next, nil
}

// DeleteCharacter removes the character and strips its id from every session
// roster. An id left only on a roster is purged and counts as a success;
// ErrCharacterNotFound means the id was found nowhere.
func (e *Engine) DeleteCharacter(doc models.Document, characterID string) (models.Document, error) {
	idx := doc.FindCharacter(characterID)

	dangling := false
	for _, s := range doc.Sessions {
		if s.HasCharacter(characterID) {
			dangling = true
			break
		}
	}
	if idx < 0 && !dangling {
		return doc, ErrCharacterNotFound
	}

	next := doc.Clone()
	if idx >= 0 {
		next.Characters = slices.Delete(next.Characters, idx, idx+1)
	}
	for i := range next.Sessions {
		next.Sessions[i].ActiveCharacterIDs = slices.DeleteFunc(next.Sessions[i].ActiveCharacterIDs, func(id string) bool {
			return id == characterID
		})
	}

	return next, nil
}

// ChangeOwner hands the character to newOwnerID. The new owner is not checked
// against the user list: GMs claim NPCs and players reclaim sheets this way.
func (e *Engine) ChangeOwner(doc models.Document, characterID, newOwnerID string) (models.Document, error) {
	idx := doc.FindCharacter(characterID)
	if idx < 0 {
		return doc, ErrCharacterNotFound
	}

	next := doc.Clone()
	next.Characters[idx].OwnerID = newOwnerID

	return next, nil
}

// ToggleType flips the character between PC and NPC.
func (e *Engine) ToggleType(doc models.Document, characterID string) (models.Document, error) {
	idx := doc.FindCharacter(characterID)
	if idx < 0 {
		return doc, ErrCharacterNotFound
	}

	next := doc.Clone()
	next.Characters[idx].Type = next.Characters[idx].Type.Toggle()

	return next, nil
}

// MergeGeneratedNPC appends a draft produced by the NPC generator. The
// draft's own ruleset is discarded in favour of systemID, a missing id is
// filled in, and vitals are clamped to [0, max].
func (e *Engine) MergeGeneratedNPC(doc models.Document, draft *models.Character, systemID string) (models.Document, error) {
	if draft == nil || strings.TrimSpace(draft.Name) == "" {
		return doc, ErrInvalidDraft
	}

	character := draft.Clone()
	character.SystemID = systemID
	if character.ID == "" {
		character.ID = e.ids.Generate()
	}
	if character.Type == "" {
		character.Type = models.CharacterNPC
	}
	character.HP = character.HP.Clamp()
	character.San = character.San.Clamp()

	next := doc.Clone()
	next.Characters = append(next.Characters, character)

	return next, nil
}
