// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMovieNotFound is returned when a lookup by id matches no movie.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrInvalidMovieData is returned when the database rejects a movie
	// because a column constraint is violated (length, not null, check).
	ErrInvalidMovieData = errors.New("movie data violates table constraints")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// PostgreSQL (pgx) nor SQLite (sqlite3).
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrAcquiringSession is returned when no connection can be taken from
	// the pool for the operation.
	ErrAcquiringSession = errors.New("failed to acquire database session")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrReadingAffectedRows is returned when the driver cannot report how
	// many rows an UPDATE or DELETE touched.
	ErrReadingAffectedRows = errors.New("failed to read affected rows")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan movie row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan movie rows")
)
