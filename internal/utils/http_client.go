// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small shared helpers: the resty-based HTTP client and
// the identifier generator.
package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "ordo-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient that announces itself as
// ordo-keeper and accepts JSON answers by default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
