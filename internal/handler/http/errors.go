// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidAuthorizationScheme is returned when the scheme is anything
	// but Bearer (compared case-insensitively).
	ErrInvalidAuthorizationScheme = errors.New("invalid authentication scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Messages of 404 answers. Deletion keeps its own wording.
const (
	msgNotFound      = "not found"
	msgMovieNotFound = "Movie not found"
)

// Acknowledgements of successful writes.
const (
	msgMovieAdded   = "Movie successfully added ✅"
	msgMovieUpdated = "Movie successfully updated ✅"
	msgMovieDeleted = "Movie successfully deleted ✅"
)
