// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/state"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

// DiceSides lists the dice offered by the session screen.
var DiceSides = []int{4, 6, 8, 10, 12, 20, 100}

const transcriptClockLayout = "15:04:05"

type clientSessionService struct {
	store  *state.Store
	engine *state.Engine

	roll     func(sides int) int
	location *time.Location

	logger *logger.Logger
}

func NewClientSessionService(st *state.Store, engine *state.Engine, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		store:    st,
		engine:   engine,
		roll:     rollDie,
		location: time.Local,
		logger:   logger,
	}
}

func rollDie(sides int) int {
	return rand.IntN(sides) + 1
}

// Start implements [ClientSessionService]. The new session is the active one
// after the transition.
func (s *clientSessionService) Start(ctx context.Context, name string) (models.Session, error) {
	doc, err := s.store.Apply(ctx, "session.start", func(doc models.Document) (models.Document, error) {
		return s.engine.StartSession(doc, name, doc.CurrentUser)
	})
	if err != nil {
		return models.Session{}, err
	}

	session, _ := doc.ActiveSession()
	s.logger.Info().
		Str("func", "clientSessionService.Start").
		Str("session_id", session.ID).
		Str("system", session.SystemID).
		Msg("session started")

	return session, nil
}

func (s *clientSessionService) Resume(ctx context.Context, sessionID string) error {
	_, err := s.store.Apply(ctx, "session.resume", func(doc models.Document) (models.Document, error) {
		return s.engine.ResumeSession(doc, sessionID)
	})
	return err
}

func (s *clientSessionService) Pause(ctx context.Context) error {
	_, err := s.store.Apply(ctx, "session.pause", s.engine.PauseSession)
	return err
}

func (s *clientSessionService) Delete(ctx context.Context, sessionID string) error {
	_, err := s.store.Apply(ctx, "session.delete", func(doc models.Document) (models.Document, error) {
		return s.engine.DeleteSession(doc, sessionID)
	})
	return err
}

func (s *clientSessionService) AddCharacter(ctx context.Context, characterID string) error {
	_, err := s.store.Apply(ctx, "session.add_character", func(doc models.Document) (models.Document, error) {
		return s.engine.AddCharacterToSession(doc, characterID)
	})
	return err
}

func (s *clientSessionService) RemoveCharacter(ctx context.Context, characterID string) error {
	_, err := s.store.Apply(ctx, "session.remove_character", func(doc models.Document) (models.Document, error) {
		return s.engine.RemoveCharacterFromSession(doc, characterID)
	})
	return err
}

func (s *clientSessionService) SendMessage(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	_, err := s.store.Apply(ctx, "session.send_message", func(doc models.Document) (models.Document, error) {
		if doc.CurrentUser == nil {
			return doc, state.ErrNotAuthenticated
		}
		if text == "" {
			return doc, state.ErrEmptyField
		}
		return s.engine.AppendLog(doc, doc.CurrentUser.ID, doc.CurrentUser.Name, text, false)
	})
	return err
}

// RollDice implements [ClientSessionService]. The roll is logged as a regular
// message from the current user.
func (s *clientSessionService) RollDice(ctx context.Context, sides int) (int, error) {
	if !slices.Contains(DiceSides, sides) {
		return 0, fmt.Errorf("%w: d%d", ErrInvalidDice, sides)
	}

	result := s.roll(sides)
	text := fmt.Sprintf("Rolou d%d: %d", sides, result)

	_, err := s.store.Apply(ctx, "session.roll_dice", func(doc models.Document) (models.Document, error) {
		if doc.CurrentUser == nil {
			return doc, state.ErrNotAuthenticated
		}
		return s.engine.AppendLog(doc, doc.CurrentUser.ID, doc.CurrentUser.Name, text, false)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug().
		Str("func", "clientSessionService.RollDice").
		Int("sides", sides).
		Int("result", result).
		Msg("dice rolled")

	return result, nil
}

func (s *clientSessionService) Active() (models.Session, bool) {
	return s.store.Snapshot().ActiveSession()
}

func (s *clientSessionService) List() []models.Session {
	return state.SessionsNewestFirst(s.store.Snapshot())
}

func (s *clientSessionService) Roster() []models.Character {
	doc := s.store.Snapshot()
	session, ok := doc.ActiveSession()
	if !ok {
		return nil
	}
	return state.RosterCharacters(doc, session)
}

// LogTranscript implements [ClientSessionService]. Each line reads
// "[HH:MM:SS] Sender: text".
func (s *clientSessionService) LogTranscript() (string, error) {
	session, ok := s.store.Snapshot().ActiveSession()
	if !ok {
		return "", state.ErrNoActiveSession
	}

	var b strings.Builder
	for i := len(session.Logs) - 1; i >= 0; i-- {
		msg := session.Logs[i]
		ts := time.UnixMilli(msg.Timestamp).In(s.location).Format(transcriptClockLayout)
		fmt.Fprintf(&b, "[%s] %s: %s\n", ts, msg.SenderName, msg.Text)
	}

	return b.String(), nil
}
