// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/state"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

type clientAuthService struct {
	store  *state.Store
	engine *state.Engine
	logger *logger.Logger
}

func NewClientAuthService(st *state.Store, engine *state.Engine, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{store: st, engine: engine, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, name, password, confirm string, role models.Role) (models.User, error) {
	doc, err := a.store.Apply(ctx, "auth.register", func(doc models.Document) (models.Document, error) {
		return a.engine.Register(doc, name, password, confirm, role)
	})
	if err != nil {
		return models.User{}, err
	}

	a.logger.Info().
		Str("func", "clientAuthService.Register").
		Str("user_id", doc.CurrentUser.ID).
		Str("role", string(doc.CurrentUser.Role)).
		Msg("user registered")

	return *doc.CurrentUser, nil
}

func (a *clientAuthService) Login(ctx context.Context, name, password string) (models.User, error) {
	doc, err := a.store.Apply(ctx, "auth.login", func(doc models.Document) (models.Document, error) {
		return a.engine.Login(doc, name, password)
	})
	if err != nil {
		return models.User{}, err
	}

	a.logger.Info().
		Str("func", "clientAuthService.Login").
		Str("user_id", doc.CurrentUser.ID).
		Msg("user logged in")

	return *doc.CurrentUser, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	_, err := a.store.Apply(ctx, "auth.logout", a.engine.Logout)
	return err
}

func (a *clientAuthService) CurrentUser() *models.User {
	doc := a.store.Snapshot()
	return doc.CurrentUser
}

func (a *clientAuthService) Users() []models.User {
	return a.store.Snapshot().Users
}
