// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is applied to the global zerolog level at startup.
	LogLevel string
}

// ClientAdapter holds the NPC generator settings.
type ClientAdapter struct {
	// BaseURL is the REST root of the generative language API.
	BaseURL string
	// APIKey authenticates requests. Empty disables generation.
	APIKey string
	// Model is the model name used in the request path.
	Model string
	// RequestTimeout is the timeout for a single generation request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file.
	DSN string
}

// ClientFile contains the JSON file backend settings.
type ClientFile struct {
	// Path is the JSON document file. Non-empty selects the file backend.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// File holds JSON file settings.
	File ClientFile
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the NPC generator settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			APIKey:         cfg.Adapter.APIKey,
			Model:          cfg.Adapter.Model,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			File: ClientFile{
				Path: cfg.Storage.File.Path,
			},
		},
	}
}
