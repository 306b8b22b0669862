// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service is the client-facing façade over the document store. Every
// mutating method applies exactly one state transition through
// [state.Store]; read methods work on a snapshot.
package service

import (
	"context"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

// ClientAuthService defines the client-side contract for profile
// registration and login.
type ClientAuthService interface {
	// Register creates a profile with the given role and logs it in.
	// Returns the state validation error when the intent is rejected.
	Register(ctx context.Context, name, password, confirm string, role models.Role) (models.User, error)

	// Login makes the profile matching name (case-insensitive) the current
	// user. Legacy profiles without a password accept any input.
	Login(ctx context.Context, name, password string) (models.User, error)

	// Logout clears the current user. The active session is kept so that a
	// later login lands back on it.
	Logout(ctx context.Context) error

	// CurrentUser returns a copy of the logged-in user, or nil.
	CurrentUser() *models.User

	// Users returns every known profile, used for the "known agents" list on
	// the login screen.
	Users() []models.User
}

// ClientCharacterService defines the client-side contract for character
// sheets and the ruleset selection.
type ClientCharacterService interface {
	// Create adds a character owned by the current user. A GM creates NPCs,
	// a player creates player characters.
	Create(ctx context.Context, name string) (models.Character, error)

	// Delete removes the character and drops it from every session roster.
	Delete(ctx context.Context, characterID string) error

	// ChangeOwner reassigns the character to newOwnerID.
	ChangeOwner(ctx context.Context, characterID, newOwnerID string) error

	// ToggleType flips the character between PC and NPC.
	ToggleType(ctx context.Context, characterID string) error

	// Visible returns the characters the current user may see.
	Visible() []models.Character

	// OwnerName resolves ownerID to a display name.
	OwnerName(ownerID string) string

	// SelectSystem makes systemID the current ruleset.
	SelectSystem(ctx context.Context, systemID string) error

	// CurrentSystem returns the currently selected ruleset.
	CurrentSystem() models.GameSystem

	// Systems lists the rulesets available for selection.
	Systems() []models.GameSystem
}

// ClientSessionService defines the client-side contract for game sessions,
// their rosters and logs.
type ClientSessionService interface {
	// Start opens a new session run by the current user (GM only) and makes
	// it the active one.
	Start(ctx context.Context, name string) (models.Session, error)

	// Resume makes an existing session active again and switches the
	// current ruleset to the session's one.
	Resume(ctx context.Context, sessionID string) error

	// Pause leaves the active session without deleting it.
	Pause(ctx context.Context) error

	// Delete removes a session and its log.
	Delete(ctx context.Context, sessionID string) error

	// AddCharacter puts a character on the active session's roster.
	AddCharacter(ctx context.Context, characterID string) error

	// RemoveCharacter takes a character off the active session's roster.
	RemoveCharacter(ctx context.Context, characterID string) error

	// SendMessage posts text to the active session's log on behalf of the
	// current user.
	SendMessage(ctx context.Context, text string) error

	// RollDice rolls a die with the given number of sides and records the
	// result in the active session's log. Only d4, d6, d8, d10, d12, d20
	// and d100 are accepted.
	RollDice(ctx context.Context, sides int) (int, error)

	// Active returns the active session, if any.
	Active() (models.Session, bool)

	// List returns all sessions, most recently started first.
	List() []models.Session

	// Roster resolves the active session's roster to characters.
	Roster() []models.Character

	// LogTranscript renders the active session's log oldest-first as plain
	// text, one message per line.
	LogTranscript() (string, error)
}

// ClientNPCService defines the client-side contract for AI-assisted NPC
// creation.
type ClientNPCService interface {
	// Generate asks the generator for a new NPC in the current ruleset and
	// adds it to the document. A nil character with a nil error means no
	// NPC could be produced; the reason is logged.
	Generate(ctx context.Context) (*models.Character, error)

	// Pending reports whether a generation is in flight.
	Pending() bool
}

// ClientDataService defines maintenance operations on the stored document.
type ClientDataService interface {
	// Reset wipes every profile, character and session and deletes the
	// stored record.
	Reset(ctx context.Context) error
}
