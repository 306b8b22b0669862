// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the transition engine and the store that owns the
// application document.
//
// Every intent (login, create character, start session, ...) is an [Engine]
// method of the form (models.Document, input) -> (models.Document, error).
// Methods never modify their input; on a rejected intent they return the
// input unchanged together with one of the sentinel errors from errors.go.
//
// [Store] serializes intents, keeps the current document, and hands every
// successfully produced document to a [Persister].
package state
