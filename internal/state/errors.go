// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "errors"

// Validation errors. A transition that returns one of these leaves the
// document unchanged.
var (
	ErrEmptyField        = errors.New("required field is empty")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrUserAlreadyExists = errors.New("user name already exists")
	ErrInvalidRole       = errors.New("invalid role")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrNotAuthenticated  = errors.New("no user is logged in")
	ErrNotGameMaster     = errors.New("action requires the GM role")
	ErrCharacterNotFound = errors.New("character not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrNoActiveSession   = errors.New("no active session")
	ErrUnknownSystem     = errors.New("unknown game system")
	ErrInvalidDraft      = errors.New("invalid character draft")
)
