// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/state"
	"github.com/MKhiriev/go-ordo-keeper/internal/store"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

type clientDataService struct {
	store    *state.Store
	storages store.DocumentStorage
	logger   *logger.Logger
}

func NewClientDataService(st *state.Store, storages store.DocumentStorage, logger *logger.Logger) ClientDataService {
	return &clientDataService{store: st, storages: storages, logger: logger}
}

// Reset implements [ClientDataService]. The in-memory document is replaced
// first, then the stored record is deleted so that the next start begins
// from defaults as well.
func (d *clientDataService) Reset(ctx context.Context) error {
	_, err := d.store.Apply(ctx, "data.reset", func(models.Document) (models.Document, error) {
		return models.DefaultDocument(), nil
	})
	if err != nil {
		return err
	}

	if err = d.storages.Reset(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrResetStorage, err)
	}

	d.logger.Info().
		Str("func", "clientDataService.Reset").
		Msg("document reset")

	return nil
}
