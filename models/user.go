// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Role is the table role of a user profile.
type Role string

const (
	// RoleGM hosts sessions and manages NPC ownership.
	RoleGM Role = "MESTRE"
	// RolePlayer owns player characters.
	RolePlayer Role = "JOGADOR"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleGM || r == RolePlayer
}

// User is a local profile. Profiles are created at registration and are never
// changed afterwards.
type User struct {
	// ID is the stable unique identifier of the profile.
	ID string `json:"id"`

	// Name is the display name, unique among users under case-insensitive
	// comparison.
	Name string `json:"name"`

	// Role decides which actions the profile may take.
	Role Role `json:"role"`

	// Password is stored in plaintext. A nil Password marks a legacy profile
	// that is admitted without any check; a non-nil empty string is a real
	// password and must match exactly.
	Password *string `json:"password,omitempty"`

	// Avatar is an optional picture reference kept for layout compatibility.
	Avatar *string `json:"avatar,omitempty"`
}

// IsGM reports whether the user holds the GM role.
func (u User) IsGM() bool {
	return u.Role == RoleGM
}

// HasPassword reports whether the profile requires a password at login.
func (u User) HasPassword() bool {
	return u.Password != nil
}

// CheckPassword applies the two-branch login rule: profiles without a stored
// password admit anything, profiles with one require an exact match.
func (u User) CheckPassword(password string) bool {
	if u.Password == nil {
		return true
	}
	return *u.Password == password
}

// SameName compares display names case-insensitively, ignoring surrounding
// whitespace on both sides. Older records may store untrimmed names.
func (u User) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Name), strings.TrimSpace(name))
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	out := u
	if u.Password != nil {
		p := *u.Password
		out.Password = &p
	}
	if u.Avatar != nil {
		a := *u.Avatar
		out.Avatar = &a
	}
	return out
}
