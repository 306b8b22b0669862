// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultDBDSN          = "ordo-keeper.db"
	DefaultAdapterBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultAdapterModel   = "gemini-2.5-flash"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Storage: Storage{
			DB: DB{DSN: DefaultDBDSN},
		},
		Adapter: Adapter{
			BaseURL:        DefaultAdapterBaseURL,
			Model:          DefaultAdapterModel,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
