// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

// Register creates a profile and logs it in.
//
// The intent is rejected when any of name, password or confirm is empty, when
// password and confirm differ, when role is unknown, or when name collides
// case-insensitively with an existing profile.
func (e *Engine) Register(doc models.Document, name, password, confirm string, role models.Role) (models.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" || confirm == "" {
		return doc, ErrEmptyField
	}
	if password != confirm {
		return doc, ErrPasswordMismatch
	}
	if !role.Valid() {
		return doc, ErrInvalidRole
	}
	if _, exists := doc.FindUserByName(name); exists {
		return doc, ErrUserAlreadyExists
	}

	pw := password
	user := models.User{
		ID:       e.ids.Generate(),
		Name:     name,
		Role:     role,
		Password: &pw,
	}

	next := doc.Clone()
	next.Users = append(next.Users, user)
	current := user.Clone()
	next.CurrentUser = &current

	return next, nil
}

// Login sets the current user to the profile matching name. Profiles without
// a stored password are admitted whatever password is supplied.
func (e *Engine) Login(doc models.Document, name, password string) (models.Document, error) {
	user, ok := doc.FindUserByName(strings.TrimSpace(name))
	if !ok {
		return doc, ErrUserNotFound
	}
	if !user.CheckPassword(password) {
		return doc, ErrWrongPassword
	}

	next := doc.Clone()
	current := user.Clone()
	next.CurrentUser = &current

	return next, nil
}

// Logout clears the current user. The active session stays open.
func (e *Engine) Logout(doc models.Document) (models.Document, error) {
	next := doc.Clone()
	next.CurrentUser = nil
	return next, nil
}
