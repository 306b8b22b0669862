// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound gateway to the generative text
// service used to invent NPCs.
//
// The primary abstraction is [NPCGenerator], which decouples the service layer
// from the remote API. The package ships a REST implementation backed by
// resty ([NewGeminiNPCGenerator]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401/403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NPCGenerator produces NPC drafts from a remote generative service.
type NPCGenerator interface {
	// GenerateNPC asks the service for one NPC fitting the ruleset named
	// systemName. The returned draft is owned by ownerID, has type NPC and
	// no id or ruleset yet. A generator without credentials returns
	// [ErrGeneratorDisabled] without contacting the service.
	GenerateNPC(ctx context.Context, systemName, ownerID string) (*models.Character, error)
}
