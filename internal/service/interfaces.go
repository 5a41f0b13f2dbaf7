// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the movie catalog: admin
// authentication and token handling, and the movie operations that sit
// between the HTTP layer and the store.
package service

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates the single admin identity and manages the
// lifecycle of its bearer tokens.
type AuthService interface {
	// Login checks the credential against the configured admin email and
	// password. Returns ErrInvalidCredentials on mismatch.
	Login(ctx context.Context, user models.User) error

	// CreateToken issues a signed token carrying the user's email.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies signature, issuer and expiry of a raw token.
	// Returns ErrInvalidToken on any failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authorize allows only tokens issued for the admin email.
	// Returns ErrForbidden otherwise.
	Authorize(ctx context.Context, token models.Token) error
}

// MovieService exposes the catalog operations. Lookups that find nothing
// return an error matching store.ErrMovieNotFound.
type MovieService interface {
	List(ctx context.Context) ([]models.Movie, error)
	Get(ctx context.Context, id int64) (models.Movie, error)
	ListByCategory(ctx context.Context, category string) ([]models.Movie, error)
	Create(ctx context.Context, movie models.Movie) (models.Movie, error)
	Update(ctx context.Context, id int64, movie models.Movie) error
	Delete(ctx context.Context, id int64) error
}

// MovieServiceWrapper defines middleware composition for MovieService.
// Implementations wrap an existing MovieService to add behavior such as
// validation.
type MovieServiceWrapper interface {
	Wrap(MovieService) MovieService // returns a decorated MovieService applying additional behavior
}

// AppInfoService reports information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
