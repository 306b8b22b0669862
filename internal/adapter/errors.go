// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrGeneratorDisabled = errors.New("npc generation disabled: no api key")
	ErrUnauthorized      = errors.New("generator unauthorized")
	ErrBadRequest        = errors.New("generator rejected request")
	ErrRateLimited       = errors.New("generator rate limited")
	ErrUnexpectedStatus  = errors.New("unexpected generator status")
	ErrMalformedResponse = errors.New("malformed generator response")
)
