// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GameSystem is a built-in ruleset that characters and sessions are tagged
// with. No rule mechanics are attached to it.
type GameSystem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

const (
	// DefaultSystemID is the ruleset selected in a fresh document.
	DefaultSystemID = "ordem-paranormal"

	// GenericSystemName is shown for ruleset ids missing from the registry.
	GenericSystemName = "RPG Genérico"
)

var gameSystems = []GameSystem{
	{ID: "ordem-paranormal", Name: "Ordem Paranormal", Description: "Investigação e horror paranormal."},
	{ID: "dnd-5e", Name: "D&D 5e", Description: "Fantasia medieval heroica."},
}

// GameSystems returns the registry in display order.
func GameSystems() []GameSystem {
	out := make([]GameSystem, len(gameSystems))
	copy(out, gameSystems)
	return out
}

// FindGameSystem looks a ruleset up by id.
func FindGameSystem(id string) (GameSystem, bool) {
	for _, s := range gameSystems {
		if s.ID == id {
			return s, true
		}
	}
	return GameSystem{}, false
}

// SystemName returns the display name of id, or [GenericSystemName].
func SystemName(id string) string {
	if s, ok := FindGameSystem(id); ok {
		return s.Name
	}
	return GenericSystemName
}
