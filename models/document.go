// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Document is the whole application state and the only unit of persistence.
//
// Transitions never modify a Document in place: they work on a [Document.Clone]
// and return it, so a caller holding the previous value keeps seeing it
// unchanged.
type Document struct {
	// CurrentUser is a snapshot of the logged-in profile, not re-resolved
	// against Users.
	CurrentUser *User `json:"currentUser"`

	Users      []User      `json:"users"`
	Characters []Character `json:"characters"`
	Sessions   []Session   `json:"sessions"`

	// ActiveSessionID points at the single open session, if any.
	ActiveSessionID *string `json:"activeSessionId"`

	// CurrentSystemID is the ruleset new characters and sessions are tagged with.
	CurrentSystemID string `json:"currentSystemId"`
}

// DefaultDocument returns the state used when nothing usable is stored.
func DefaultDocument() Document {
	return Document{
		Users:           []User{},
		Characters:      []Character{},
		Sessions:        []Session{},
		CurrentSystemID: DefaultSystemID,
	}
}

// Normalize replaces nil collections with empty ones and fills a missing
// ruleset, so that documents decoded from older or partial records behave
// like freshly created ones.
func (d Document) Normalize() Document {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Characters == nil {
		d.Characters = []Character{}
	}
	if d.Sessions == nil {
		d.Sessions = []Session{}
	}
	for i := range d.Characters {
		if d.Characters[i].Attributes == nil {
			d.Characters[i].Attributes = []Attribute{}
		}
	}
	for i := range d.Sessions {
		if d.Sessions[i].ActiveCharacterIDs == nil {
			d.Sessions[i].ActiveCharacterIDs = []string{}
		}
		if d.Sessions[i].Logs == nil {
			d.Sessions[i].Logs = []ChatMessage{}
		}
	}
	if strings.TrimSpace(d.CurrentSystemID) == "" {
		d.CurrentSystemID = DefaultSystemID
	}
	if d.ActiveSessionID != nil && *d.ActiveSessionID == "" {
		d.ActiveSessionID = nil
	}
	return d
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := Document{CurrentSystemID: d.CurrentSystemID}

	if d.CurrentUser != nil {
		u := d.CurrentUser.Clone()
		out.CurrentUser = &u
	}
	if d.ActiveSessionID != nil {
		id := *d.ActiveSessionID
		out.ActiveSessionID = &id
	}

	out.Users = make([]User, len(d.Users))
	for i, u := range d.Users {
		out.Users[i] = u.Clone()
	}
	out.Characters = make([]Character, len(d.Characters))
	for i, c := range d.Characters {
		out.Characters[i] = c.Clone()
	}
	out.Sessions = make([]Session, len(d.Sessions))
	for i, s := range d.Sessions {
		out.Sessions[i] = s.Clone()
	}

	return out
}

// IsActiveSession reports whether id is the open session.
func (d Document) IsActiveSession(id string) bool {
	return d.ActiveSessionID != nil && *d.ActiveSessionID == id
}

// FindUser looks a profile up by id.
func (d Document) FindUser(id string) (User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindUserByName looks a profile up by case-insensitive display name.
func (d Document) FindUserByName(name string) (User, bool) {
	for _, u := range d.Users {
		if u.SameName(name) {
			return u, true
		}
	}
	return User{}, false
}

// FindCharacter returns the index of the character with id, or -1.
func (d Document) FindCharacter(id string) int {
	for i, c := range d.Characters {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// FindSession returns the index of the session with id, or -1.
func (d Document) FindSession(id string) int {
	for i, s := range d.Sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// ActiveSession returns the open session, if the pointer resolves.
func (d Document) ActiveSession() (Session, bool) {
	if d.ActiveSessionID == nil {
		return Session{}, false
	}
	idx := d.FindSession(*d.ActiveSessionID)
	if idx < 0 {
		return Session{}, false
	}
	return d.Sessions[idx], true
}
