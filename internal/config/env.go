// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envFileVar     = "ENV_FILE"
	defaultEnvFile = ".env"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads the file named by ENV_FILE (".env" by default) into the
// process environment. Variables that are already set are not overridden,
// and a missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}

	return nil
}
