// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

// OwnerName resolves an owner id to a display name.
func OwnerName(doc models.Document, ownerID string) string {
	if u, ok := doc.FindUser(ownerID); ok {
		return u.Name
	}
	return models.UnknownOwnerName
}

// VisibleCharacters lists what viewer may see: everything for a GM, the
// viewer's own sheets otherwise. A nil viewer sees nothing.
func VisibleCharacters(doc models.Document, viewer *models.User) []models.Character {
	if viewer == nil {
		return []models.Character{}
	}

	out := make([]models.Character, 0, len(doc.Characters))
	for _, c := range doc.Characters {
		if viewer.IsGM() || c.OwnerID == viewer.ID {
			out = append(out, c.Clone())
		}
	}
	return out
}

// RosterCharacters resolves the session roster in roster order. Ids whose
// character no longer exists are skipped.
func RosterCharacters(doc models.Document, session models.Session) []models.Character {
	out := make([]models.Character, 0, len(session.ActiveCharacterIDs))
	for _, id := range session.ActiveCharacterIDs {
		if idx := doc.FindCharacter(id); idx >= 0 {
			out = append(out, doc.Characters[idx].Clone())
		}
	}
	return out
}

// SessionsNewestFirst returns the sessions ordered by the timestamp of their
// oldest log entry, most recent first. Equal timestamps keep creation order
// reversed.
func SessionsNewestFirst(doc models.Document) []models.Session {
	out := make([]models.Session, len(doc.Sessions))
	for i, s := range doc.Sessions {
		out[len(out)-1-i] = s.Clone()
	}
	slices.SortStableFunc(out, func(a, b models.Session) int {
		ta, tb := a.StartedAt(), b.StartedAt()
		switch {
		case ta > tb:
			return -1
		case ta < tb:
			return 1
		}
		return 0
	})
	return out
}
