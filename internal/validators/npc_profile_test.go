// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() models.NPCProfile {
	return models.NPCProfile{Name: "Velha Marta", Description: "Vê o que não deveria.", HPMax: 12, SanMax: 7}
}

func TestNewNPCProfileValidator(t *testing.T) {
	require.NotNil(t, NewNPCProfileValidator())
}

func TestNPCProfileValidator_Dispatch(t *testing.T) {
	v := NewNPCProfileValidator()
	ctx := context.Background()
	p := validProfile()

	assert.NoError(t, v.Validate(ctx, p))
	assert.NoError(t, v.Validate(ctx, &p))
	assert.ErrorIs(t, v.Validate(ctx, (*models.NPCProfile)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "npc"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Character{}), ErrUnsupportedType)
}

func TestNPCProfileValidator_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.NPCProfile)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.NPCProfile) {}},
		{name: "zero vitals are fine", mutate: func(p *models.NPCProfile) { p.HPMax, p.SanMax = 0, 0 }},
		{name: "empty description is fine", mutate: func(p *models.NPCProfile) { p.Description = "" }},
		{name: "blank name", mutate: func(p *models.NPCProfile) { p.Name = "  " }, wantErr: ErrEmptyName},
		{name: "negative hp", mutate: func(p *models.NPCProfile) { p.HPMax = -1 }, wantErr: ErrNegativeVital},
		{name: "negative san", mutate: func(p *models.NPCProfile) { p.SanMax = -3 }, wantErr: ErrNegativeVital},
		{name: "huge hp", mutate: func(p *models.NPCProfile) { p.HPMax = 100000 }, wantErr: ErrVitalOutOfBounds},
		{
			name:   "scoped to name skips vitals",
			mutate: func(p *models.NPCProfile) { p.HPMax = -1 },
			fields: []string{FieldName},
		},
		{name: "unknown field", mutate: func(*models.NPCProfile) {}, fields: []string{"avatar"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := NewNPCProfileValidator().Validate(context.Background(), p, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
