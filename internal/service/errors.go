// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrGenerationInProgress = errors.New("npc generation already in progress")
	ErrInvalidDice          = errors.New("unsupported die")
	ErrResetStorage         = errors.New("error resetting stored document")
)
