// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

// Field names accepted by [NPCProfileValidator].
const (
	FieldName   = "name"
	FieldHPMax  = "hp_max"
	FieldSanMax = "san_max"
)

// maxVital caps generated vitals. Anything larger is a broken answer, not a
// tough NPC.
const maxVital = 999

// NPCProfileValidator validates [models.NPCProfile] values, by value or by
// pointer.
type NPCProfileValidator struct {
}

func NewNPCProfileValidator() Validator {
	return &NPCProfileValidator{}
}

func (v *NPCProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NPCProfile:
		return v.validateProfile(ctx, value, fields...)
	case *models.NPCProfile:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProfile(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NPCProfileValidator) validateProfile(_ context.Context, p models.NPCProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldHPMax, FieldSanMax}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				return ErrEmptyName
			}
		case FieldHPMax:
			if err := validateVital(p.HPMax); err != nil {
				return err
			}
		case FieldSanMax:
			if err := validateVital(p.SanMax); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateVital(max int) error {
	if max < 0 {
		return ErrNegativeVital
	}
	if max > maxVital {
		return ErrVitalOutOfBounds
	}
	return nil
}
