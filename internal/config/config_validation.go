// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig]. Only values that are
// malformed regardless of how they will be used are rejected here; required
// fields are checked on the client view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" && strings.TrimSpace(cfg.Storage.File.Path) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.Model == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return ErrInvalidAppConfigs
	}

	return nil
}
