// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"testing"

	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_CreateCharacter(t *testing.T) {
	tests := []struct {
		name     string
		acting   *models.User
		wantType models.CharacterType
	}{
		{name: "gm creates npc", acting: gm(), wantType: models.CharacterNPC},
		{name: "player creates pc", acting: player(), wantType: models.CharacterPC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			base := populated()
			base.CurrentSystemID = "dnd-5e"

			doc, err := e.CreateCharacter(base, "  Zed  ", tt.acting)
			require.NoError(t, err)
			require.Len(t, doc.Characters, 2)

			c := doc.Characters[1]
			assert.Equal(t, "id-1", c.ID)
			assert.Equal(t, "Zed", c.Name)
			assert.Equal(t, tt.wantType, c.Type)
			assert.Equal(t, tt.acting.ID, c.OwnerID)
			assert.Equal(t, "dnd-5e", c.SystemID)
			assert.Equal(t, models.DefaultDescription, c.Description)
			assert.Equal(t, models.DefaultAttributes(), c.Attributes)
			assert.Equal(t, models.Vital{Current: 20, Max: 20}, c.HP)
			assert.Equal(t, models.Vital{Current: 20, Max: 20}, c.San)
		})
	}
}

func TestEngine_CreateCharacter_Rejected(t *testing.T) {
	e := newTestEngine()
	base := populated()

	doc, err := e.CreateCharacter(base, "Zed", nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, base, doc)

	doc, err = e.CreateCharacter(base, "   ", player())
	assert.ErrorIs(t, err, ErrEmptyField)
	assert.Equal(t, base, doc)
}

func TestEngine_DeleteCharacter_CascadesToRosters(t *testing.T) {
	e := newTestEngine()
	base := populated()
	base.Sessions[1].ActiveCharacterIDs = []string{"c-1"}

	doc, err := e.DeleteCharacter(base, "c-1")
	require.NoError(t, err)

	assert.Equal(t, -1, doc.FindCharacter("c-1"))
	for _, s := range doc.Sessions {
		assert.NotContains(t, s.ActiveCharacterIDs, "c-1", "session %s", s.ID)
	}
}

func TestEngine_DeleteCharacter_Unknown(t *testing.T) {
	e := newTestEngine()
	base := populated()

	doc, err := e.DeleteCharacter(base, "c-404")
	assert.ErrorIs(t, err, ErrCharacterNotFound)
	assert.Equal(t, base, doc)
}

func TestEngine_DeleteCharacter_PurgesDanglingRosterID(t *testing.T) {
	e := newTestEngine()
	base := populated()
	base.Sessions[0].ActiveCharacterIDs = []string{"c-1", "c-ghost"}

	doc, err := e.DeleteCharacter(base, "c-ghost")
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, doc.Sessions[0].ActiveCharacterIDs)
	assert.Equal(t, []string{"c-1", "c-ghost"}, base.Sessions[0].ActiveCharacterIDs, "input untouched")
	assert.Len(t, doc.Characters, 1)
}

func TestEngine_ChangeOwner(t *testing.T) {
	e := newTestEngine()

	doc, err := e.ChangeOwner(populated(), "c-1", "u-nobody")
	require.NoError(t, err)
	assert.Equal(t, "u-nobody", doc.Characters[0].OwnerID)
	assert.Equal(t, models.UnknownOwnerName, OwnerName(doc, doc.Characters[0].OwnerID))

	_, err = e.ChangeOwner(populated(), "c-404", "u-gm")
	assert.ErrorIs(t, err, ErrCharacterNotFound)
}

func TestEngine_ToggleType_IsInvolution(t *testing.T) {
	e := newTestEngine()
	base := populated()

	once, err := e.ToggleType(base, "c-1")
	require.NoError(t, err)
	assert.Equal(t, models.CharacterNPC, once.Characters[0].Type)

	twice, err := e.ToggleType(once, "c-1")
	require.NoError(t, err)
	assert.Equal(t, base, twice)

	_, err = e.ToggleType(base, "c-404")
	assert.ErrorIs(t, err, ErrCharacterNotFound)
}

func TestEngine_MergeGeneratedNPC(t *testing.T) {
	e := newTestEngine()
	draft := models.NewNPCDraft(models.NPCProfile{Name: "Kian", Description: "Sombrio.", HPMax: 12, SanMax: 8}, "u-gm")
	draft.SystemID = "ignored"
	draft.HP.Current = 99
	draft.San.Current = -4

	doc, err := e.MergeGeneratedNPC(populated(), draft, "dnd-5e")
	require.NoError(t, err)
	require.Len(t, doc.Characters, 2)

	c := doc.Characters[1]
	assert.Equal(t, "id-1", c.ID)
	assert.Equal(t, "dnd-5e", c.SystemID)
	assert.Equal(t, models.CharacterNPC, c.Type)
	assert.Equal(t, models.Vital{Current: 12, Max: 12}, c.HP)
	assert.Equal(t, models.Vital{Current: 0, Max: 8}, c.San)

	assert.Equal(t, "ignored", draft.SystemID, "draft must not be modified")
}

func TestEngine_MergeGeneratedNPC_KeepsDraftID(t *testing.T) {
	e := newTestEngine()
	draft := &models.Character{ID: "npc-7", Name: "Kian", Type: models.CharacterNPC}

	doc, err := e.MergeGeneratedNPC(populated(), draft, models.DefaultSystemID)
	require.NoError(t, err)
	assert.Equal(t, "npc-7", doc.Characters[1].ID)
}

func TestEngine_MergeGeneratedNPC_InvalidDraft(t *testing.T) {
	e := newTestEngine()
	base := populated()

	for name, draft := range map[string]*models.Character{
		"nil draft":  nil,
		"blank name": {Name: "  "},
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := e.MergeGeneratedNPC(base, draft, "dnd-5e")
			assert.ErrorIs(t, err, ErrInvalidDraft)
			assert.Equal(t, base, doc)
		})
	}
}
