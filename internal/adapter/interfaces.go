// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the movie catalog HTTP API.
//
// The primary abstraction is [CatalogAdapter], which hides the REST routes,
// bearer token handling and JSON encoding from callers such as the CLI.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrValidation] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter defines communication with the movie catalog server.
// Implementations are responsible for serialisation, authentication header
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type CatalogAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent movie requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges the admin credential for a bearer token and stores it
	// via SetToken.
	Login(ctx context.Context, user models.User) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (models.Movie, error)
	ListMoviesByCategory(ctx context.Context, category string) ([]models.Movie, error)

	// CreateMovie, UpdateMovie and DeleteMovie return the server's
	// acknowledgement message.
	CreateMovie(ctx context.Context, movie models.Movie) (string, error)
	UpdateMovie(ctx context.Context, id int64, movie models.Movie) (string, error)
	DeleteMovie(ctx context.Context, id int64) (string, error)
}
