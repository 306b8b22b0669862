// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CharacterType distinguishes player characters from NPCs.
type CharacterType string

const (
	// CharacterPC is a player character.
	CharacterPC CharacterType = "PERSONAGEM"
	// CharacterNPC is a non-player character.
	CharacterNPC CharacterType = "NPC"
)

// Toggle returns the opposite type.
func (t CharacterType) Toggle() CharacterType {
	if t == CharacterPC {
		return CharacterNPC
	}
	return CharacterPC
}

// Default sheet values for newly created characters.
const (
	DefaultVitalMax    = 20
	DefaultDescription = "Novo personagem"
	UnknownOwnerName   = "Desconhecido"
)

// Attribute is a named sheet value owned by a character.
type Attribute struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DefaultAttributes returns the starting attribute block of a hand-made
// character.
func DefaultAttributes() []Attribute {
	return []Attribute{
		{Name: "Força", Value: 1},
		{Name: "Agilidade", Value: 1},
		{Name: "Intelecto", Value: 1},
		{Name: "Presença", Value: 1},
		{Name: "Vigor", Value: 1},
	}
}

// Vital is a current/max pair such as hit points or sanity.
type Vital struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// NewVital returns a full vital of the given maximum.
func NewVital(max int) Vital {
	return Vital{Current: max, Max: max}.Clamp()
}

// Clamp keeps max non-negative and current within [0, max].
func (v Vital) Clamp() Vital {
	if v.Max < 0 {
		v.Max = 0
	}
	if v.Current < 0 {
		v.Current = 0
	}
	if v.Current > v.Max {
		v.Current = v.Max
	}
	return v
}

// Character is a character sheet. OwnerID is not checked against the user
// list; a dangling owner is displayed as [UnknownOwnerName].
type Character struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        CharacterType `json:"type"`
	OwnerID     string        `json:"ownerId"`
	SystemID    string        `json:"systemId"`
	Description string        `json:"description"`
	Attributes  []Attribute   `json:"attributes"`
	HP          Vital         `json:"hp"`
	San         Vital         `json:"san"`
}

// Clone returns a deep copy of c.
func (c Character) Clone() Character {
	out := c
	out.Attributes = make([]Attribute, len(c.Attributes))
	copy(out.Attributes, c.Attributes)
	return out
}
