// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for
// ordo-keeper. It is populated by merging values from environment variables
// (optionally seeded from a .env file), command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects where the application document is kept.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter configures the generative-AI endpoint used to create NPCs.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for both storage backends. When
// File.Path is set the JSON file backend is used and DB is ignored.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file backend settings.
	File File `envPrefix:"FILE_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database file. It is created when missing.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds settings for the JSON file backend.
type File struct {
	// Path is the JSON file the document is written to.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Adapter configures the NPC generator.
type Adapter struct {
	// BaseURL is the REST root of the generative language API.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates against the API. Empty disables NPC generation.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model name inserted into the request path.
	// Env: ADAPTER_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout bounds a single generation request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in this order:
//  1. Environment variables (after loading the .env file named by ENV_FILE)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
