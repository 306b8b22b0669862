// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "time"

// Engine applies intents to documents. It carries only its id source and
// clock, so two calls with the same inputs and the same generator output
// produce equal documents.
type Engine struct {
	ids IDGenerator
	now func() time.Time
}

// NewEngine builds an Engine. A nil now defaults to time.Now.
func NewEngine(ids IDGenerator, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{ids: ids, now: now}
}
