// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values that enter the application from outside
// the user's own input, such as the answers of the NPC generation service.
//
// A [Validator] accepts optional field names to restrict validation to a
// subset of fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
