// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ordo-keeper process lifecycle.
//
// It restores the opening screen from the persisted document, runs the
// terminal UI and closes the storage backend when the UI exits.
package client
