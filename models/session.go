// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Sender of the synthetic session-lifecycle messages.
const (
	SystemSenderID   = "system"
	SystemSenderName = "Sistema"
)

// ChatMessage is an immutable entry of a session log.
type ChatMessage struct {
	ID       string `json:"id"`
	SenderID string `json:"senderId"`
	// SenderName is copied at send time and never re-resolved.
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	// Timestamp is in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
	IsSystem  bool  `json:"isSystem"`
}

// Session is a game session hosted by a GM.
type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	GMID     string `json:"gmId"`
	SystemID string `json:"systemId"`

	// IsActive mirrors Document.ActiveSessionID; the pointer is authoritative.
	IsActive bool `json:"isActive"`

	// ActiveCharacterIDs is the roster. It never holds duplicates.
	ActiveCharacterIDs []string `json:"activeCharacterIds"`

	// Logs is ordered newest first.
	Logs []ChatMessage `json:"logs"`
}

// HasCharacter reports whether characterID is on the roster.
func (s Session) HasCharacter(characterID string) bool {
	return slices.Contains(s.ActiveCharacterIDs, characterID)
}

// StartedAt returns the timestamp of the oldest log entry, or zero when the
// log is empty.
func (s Session) StartedAt() int64 {
	if len(s.Logs) == 0 {
		return 0
	}
	return s.Logs[len(s.Logs)-1].Timestamp
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	out := s
	out.ActiveCharacterIDs = make([]string, len(s.ActiveCharacterIDs))
	copy(out.ActiveCharacterIDs, s.ActiveCharacterIDs)
	out.Logs = make([]ChatMessage, len(s.Logs))
	copy(out.Logs, s.Logs)
	return out
}
