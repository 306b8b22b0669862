// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ordo-keeper/internal/adapter"
	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/state"
	"github.com/MKhiriev/go-ordo-keeper/internal/store"
	"github.com/MKhiriev/go-ordo-keeper/internal/utils"
)

type ClientServices struct {
	AuthService      ClientAuthService
	CharacterService ClientCharacterService
	SessionService   ClientSessionService
	NPCService       ClientNPCService
	DataService      ClientDataService
}

// NewClientServices loads the document from storages and builds every client
// service around one shared [state.Store].
func NewClientServices(ctx context.Context, storages store.DocumentStorage, generator adapter.NPCGenerator, logger *logger.Logger) *ClientServices {
	st := state.NewStore(ctx, storages, logger)
	engine := state.NewEngine(utils.NewUUIDGenerator(), time.Now)

	return newClientServices(st, engine, storages, generator, logger)
}

func newClientServices(st *state.Store, engine *state.Engine, storages store.DocumentStorage, generator adapter.NPCGenerator, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(st, engine, logger),
		CharacterService: NewClientCharacterService(st, engine, logger),
		SessionService:   NewClientSessionService(st, engine, logger),
		NPCService:       NewClientNPCService(st, engine, generator, logger),
		DataService:      NewClientDataService(st, storages, logger),
	}
}
