// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestOwnerName(t *testing.T) {
	doc := populated()

	assert.Equal(t, "Alice", OwnerName(doc, "u-pl"))
	assert.Equal(t, "Desconhecido", OwnerName(doc, "u-gone"))
}

func TestVisibleCharacters(t *testing.T) {
	doc := populated()
	doc.Characters = append(doc.Characters, models.Character{ID: "c-npc", Name: "Kian", Type: models.CharacterNPC, OwnerID: "u-gm"})

	assert.Len(t, VisibleCharacters(doc, gm()), 2)

	mine := VisibleCharacters(doc, player())
	if assert.Len(t, mine, 1) {
		assert.Equal(t, "c-1", mine[0].ID)
	}

	assert.Empty(t, VisibleCharacters(doc, nil))
}

func TestRosterCharacters_SkipsDangling(t *testing.T) {
	doc := populated()
	session := doc.Sessions[0]
	session.ActiveCharacterIDs = []string{"c-ghost", "c-1"}

	roster := RosterCharacters(doc, session)
	if assert.Len(t, roster, 1) {
		assert.Equal(t, "Arthur", roster[0].Name)
	}
}

func TestSessionsNewestFirst(t *testing.T) {
	doc := populated()
	doc.Sessions[0].Logs = []models.ChatMessage{{Text: "latest", Timestamp: 300}, {Text: "start", Timestamp: 100}}
	doc.Sessions[1].Logs = []models.ChatMessage{{Text: "start", Timestamp: 200}}
	doc.Sessions = append(doc.Sessions, models.Session{ID: "s-3", Logs: []models.ChatMessage{}})

	sorted := SessionsNewestFirst(doc)

	ids := make([]string, 0, len(sorted))
	for _, s := range sorted {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"s-2", "s-1", "s-3"}, ids)
}
