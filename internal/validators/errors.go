// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNegativeVital    = errors.New("vital maximum cannot be negative")
	ErrVitalOutOfBounds = errors.New("vital maximum is out of bounds")
)
