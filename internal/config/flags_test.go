// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-d", "ordo.db",
				"-f", "ordo.json",
				"-c", "config.json",
				"-ai-url", "http://localhost:1234",
				"-ai-key", "k",
				"-ai-model", "m",
				"-request-timeout", "10s",
				"-log-level", "error",
			},
			expected: &StructuredConfig{
				App:     App{LogLevel: "error"},
				Storage: Storage{DB: DB{DSN: "ordo.db"}, File: File{Path: "ordo.json"}},
				Adapter: Adapter{
					BaseURL:        "http://localhost:1234",
					APIKey:         "k",
					Model:          "m",
					RequestTimeout: 10 * time.Second,
				},
				JSONFilePath: "config.json",
			},
		},
		{
			name:     "config alias",
			args:     []string{"-config", "alias.json"},
			expected: &StructuredConfig{JSONFilePath: "alias.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag":     {"-a", "localhost:8080"},
		"invalid duration": {"-request-timeout", "soon"},
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseFlags(args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
