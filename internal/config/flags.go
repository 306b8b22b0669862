// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-d SQLite database file
//	-f JSON document file (takes precedence over -d)
//	-c/-config json file path with configs
//	-ai-url generative API base URL
//	-ai-key generative API key
//	-ai-model generative model name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
func parseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var documentFile string
	var jsonConfigPath string
	var baseURL, apiKey, model string
	var requestTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("ordo-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "SQLite database file")
	fs.StringVar(&documentFile, "f", "", "JSON document file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&baseURL, "ai-url", "", "Generative API base URL")
	fs.StringVar(&apiKey, "ai-key", "", "Generative API key")
	fs.StringVar(&model, "ai-model", "", "Generative model name")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			File: File{
				Path: documentFile,
			},
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			APIKey:         apiKey,
			Model:          model,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
