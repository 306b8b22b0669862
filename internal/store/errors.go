// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when no record is stored under the
	// requested key.
	ErrDocumentNotFound = errors.New("document was not found")
)

// Low-level operation errors. Repository methods wrap the driver error with
// one of these.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning the payload column fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrReadingFile is returned when the JSON store file cannot be read or
	// decoded.
	ErrReadingFile = errors.New("failed to read document file")

	// ErrWritingFile is returned when the JSON store file cannot be written.
	ErrWritingFile = errors.New("failed to write document file")
)
