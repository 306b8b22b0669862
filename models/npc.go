// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NPCProfile is the raw answer of the NPC generation service.
type NPCProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HPMax       int    `json:"hpMax"`
	SanMax      int    `json:"sanMax"`
}

// NPCAttributes returns the starting block given to generated NPCs.
func NPCAttributes() []Attribute {
	return []Attribute{
		{Name: "Força", Value: 1},
		{Name: "Agilidade", Value: 2},
		{Name: "Intelecto", Value: 3},
		{Name: "Presença", Value: 2},
		{Name: "Vigor", Value: 1},
	}
}

// NewNPCDraft completes a generated profile into a character draft owned by
// ownerID. The draft has no id and no ruleset; both are set when it is merged
// into the document.
func NewNPCDraft(p NPCProfile, ownerID string) *Character {
	return &Character{
		Name:        strings.TrimSpace(p.Name),
		Type:        CharacterNPC,
		OwnerID:     ownerID,
		Description: strings.TrimSpace(p.Description),
		Attributes:  NPCAttributes(),
		HP:          NewVital(p.HPMax),
		San:         NewVital(p.SanMax),
	}
}
