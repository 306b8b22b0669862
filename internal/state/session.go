// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

const sessionClockLayout = "15:04:05"

// StartSession opens a new session run by acting and makes it the active one.
func (e *Engine) StartSession(doc models.Document, name string, acting *models.User) (models.Document, error) {
	if acting == nil {
		return doc, ErrNotAuthenticated
	}
	if !acting.IsGM() {
		return doc, ErrNotGameMaster
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return doc, ErrEmptyField
	}

	now := e.now()
	session := models.Session{
		ID:                 e.ids.Generate(),
		Name:               name,
		GMID:               acting.ID,
		SystemID:           doc.CurrentSystemID,
		IsActive:           true,
		ActiveCharacterIDs: []string{},
		Logs: []models.ChatMessage{{
			ID:         e.ids.Generate(),
			SenderID:   models.SystemSenderID,
			SenderName: models.SystemSenderName,
			Text: fmt.Sprintf("Sessão \"%s\" iniciada em %s usando sistema %s",
				name, now.Format(sessionClockLayout), models.SystemName(doc.CurrentSystemID)),
			Timestamp: now.UnixMilli(),
			IsSystem:  true,
		}},
	}

	next := doc.Clone()
	next.Sessions = append(next.Sessions, session)
	activate(&next, session.ID)

	return next, nil
}

// ResumeSession reopens a stored session and switches the selected ruleset to
// the one the session was started with.
func (e *Engine) ResumeSession(doc models.Document, sessionID string) (models.Document, error) {
	idx := doc.FindSession(sessionID)
	if idx < 0 {
		return doc, ErrSessionNotFound
	}

	next := doc.Clone()
	activate(&next, sessionID)
	next.CurrentSystemID = next.Sessions[idx].SystemID

	return next, nil
}

// PauseSession clears the active pointer. The session itself is kept.
func (e *Engine) PauseSession(doc models.Document) (models.Document, error) {
	next := doc.Clone()
	next.ActiveSessionID = nil
	for i := range next.Sessions {
		next.Sessions[i].IsActive = false
	}
	return next, nil
}

// DeleteSession drops the session and, when it was the open one, the active pointer.
func (e *Engine) DeleteSession(doc models.Document, sessionID string) (models.Document, error) {
	idx := doc.FindSession(sessionID)
	if idx < 0 {
		return doc, ErrSessionNotFound
	}

	next := doc.Clone()
	next.Sessions = slices.Delete(next.Sessions, idx, idx+1)
	if next.IsActiveSession(sessionID) {
		next.ActiveSessionID = nil
	}

	return next, nil
}

// AddCharacterToSession puts the character on the active roster. Adding a
// character already present leaves the document as it is.
func (e *Engine) AddCharacterToSession(doc models.Document, characterID string) (models.Document, error) {
	idx, err := activeIndex(doc)
	if err != nil {
		return doc, err
	}
	if doc.Sessions[idx].HasCharacter(characterID) {
		return doc, nil
	}

	next := doc.Clone()
	next.Sessions[idx].ActiveCharacterIDs = append(next.Sessions[idx].ActiveCharacterIDs, characterID)

	return next, nil
}

// RemoveCharacterFromSession takes the character off the active roster.
func (e *Engine) RemoveCharacterFromSession(doc models.Document, characterID string) (models.Document, error) {
	idx, err := activeIndex(doc)
	if err != nil {
		return doc, err
	}
	if !doc.Sessions[idx].HasCharacter(characterID) {
		return doc, nil
	}

	next := doc.Clone()
	next.Sessions[idx].ActiveCharacterIDs = slices.DeleteFunc(next.Sessions[idx].ActiveCharacterIDs, func(id string) bool {
		return id == characterID
	})

	return next, nil
}

// AppendLog puts a message at the head of the active session's log.
func (e *Engine) AppendLog(doc models.Document, senderID, senderName, text string, isSystem bool) (models.Document, error) {
	idx, err := activeIndex(doc)
	if err != nil {
		return doc, err
	}

	msg := models.ChatMessage{
		ID:         e.ids.Generate(),
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
		Timestamp:  e.now().UnixMilli(),
		IsSystem:   isSystem,
	}

	next := doc.Clone()
	logs := next.Sessions[idx].Logs
	next.Sessions[idx].Logs = append([]models.ChatMessage{msg}, logs...)

	return next, nil
}

// SelectSystem changes the ruleset used for new characters and sessions.
func (e *Engine) SelectSystem(doc models.Document, systemID string) (models.Document, error) {
	if _, ok := models.FindGameSystem(systemID); !ok {
		return doc, ErrUnknownSystem
	}

	next := doc.Clone()
	next.CurrentSystemID = systemID

	return next, nil
}

func activate(doc *models.Document, sessionID string) {
	id := sessionID
	doc.ActiveSessionID = &id
	for i := range doc.Sessions {
		doc.Sessions[i].IsActive = doc.Sessions[i].ID == sessionID
	}
}

func activeIndex(doc models.Document) (int, error) {
	if doc.ActiveSessionID == nil {
		return -1, ErrNoActiveSession
	}
	idx := doc.FindSession(*doc.ActiveSessionID)
	if idx < 0 {
		return -1, ErrNoActiveSession
	}
	return idx, nil
}
