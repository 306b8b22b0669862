// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/mock"
	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func sampleDocument() models.Document {
	gm := models.User{ID: "u-gm", Name: "Bob", Role: models.RoleGM, Password: strPtr("x")}
	doc := models.DefaultDocument()
	doc.CurrentUser = &gm
	doc.Users = []models.User{gm, {ID: "u-old", Name: "Legacy", Role: models.RolePlayer}}
	doc.Characters = []models.Character{{
		ID: "c-1", Name: "Kian", Type: models.CharacterNPC, OwnerID: "u-gm", SystemID: "dnd-5e",
		Description: "Sombrio.", Attributes: models.NPCAttributes(),
		HP: models.NewVital(12), San: models.NewVital(8),
	}}
	doc.Sessions = []models.Session{{
		ID: "s-1", Name: "Ep1", GMID: "u-gm", SystemID: "dnd-5e", IsActive: true,
		ActiveCharacterIDs: []string{"c-1"},
		Logs: []models.ChatMessage{{
			ID: "m-1", SenderID: models.SystemSenderID, SenderName: models.SystemSenderName,
			Text: "start", Timestamp: 1700000000000, IsSystem: true,
		}},
	}}
	doc.ActiveSessionID = strPtr("s-1")
	doc.CurrentSystemID = "dnd-5e"
	return doc
}

func TestDocumentStorage_Load_Fallbacks(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		err   error
	}{
		{name: "absent", err: ErrDocumentNotFound},
		{name: "read error", err: errors.New("disk I/O error")},
		{name: "corrupt bytes", raw: []byte("{not json")},
		{name: "wrong shape", raw: []byte(`[1, 2, 3]`)},
		{name: "wrong field types", raw: []byte(`{"users": "everyone"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockDocumentRepository(ctrl)
			ctx := context.Background()

			repo.EXPECT().Get(ctx, DocumentKey).Return(tt.raw, tt.err)

			doc := NewDocumentStorage(repo, logger.Nop()).Load(ctx)
			assert.Equal(t, models.DefaultDocument(), doc)
		})
	}
}

func TestDocumentStorage_Load_NormalizesPartialRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, DocumentKey).Return([]byte(`{"users":[{"id":"u1","name":"Old","role":"JOGADOR"}]}`), nil)

	doc := NewDocumentStorage(repo, logger.Nop()).Load(ctx)

	require.Len(t, doc.Users, 1)
	assert.Nil(t, doc.Users[0].Password, "legacy user keeps no password")
	assert.NotNil(t, doc.Characters)
	assert.NotNil(t, doc.Sessions)
	assert.Equal(t, models.DefaultSystemID, doc.CurrentSystemID)
}

func TestDocumentStorage_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)
	ctx := context.Background()
	doc := sampleDocument()

	repo.EXPECT().Put(ctx, DocumentKey, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, raw []byte) error {
		var decoded models.Document
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, doc, decoded)
		return nil
	})

	NewDocumentStorage(repo, logger.Nop()).Save(ctx, doc)
}

func TestDocumentStorage_Save_SwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().Put(ctx, DocumentKey, gomock.Any()).Return(errors.New("quota exceeded"))

	assert.NotPanics(t, func() {
		NewDocumentStorage(repo, logger.Nop()).Save(ctx, sampleDocument())
	})
}

func TestDocumentStorage_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Delete(ctx, DocumentKey).Return(nil),
		repo.EXPECT().Delete(ctx, DocumentKey).Return(errors.New("locked")),
	)

	s := NewDocumentStorage(repo, logger.Nop())
	assert.NoError(t, s.Reset(ctx))
	assert.Error(t, s.Reset(ctx))
}

// Save followed by Load must reproduce the document exactly.
func TestDocumentStorage_FileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewFileDocumentRepository(filepath.Join(t.TempDir(), "ordo.json"), logger.Nop())
	s := NewDocumentStorage(repo, logger.Nop())

	assert.Equal(t, models.DefaultDocument(), s.Load(ctx))

	doc := sampleDocument()
	s.Save(ctx, doc)
	assert.Equal(t, doc, s.Load(ctx))

	s.Save(ctx, models.DefaultDocument())
	assert.Equal(t, models.DefaultDocument(), s.Load(ctx))

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, models.DefaultDocument(), s.Load(ctx))
}
