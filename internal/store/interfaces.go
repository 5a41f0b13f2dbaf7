// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of catalog movies in a relational
// database (PostgreSQL through pgx, or SQLite).
//
// Every repository operation takes its own session from the connection pool
// and returns it on every exit path. Writes are single statements committed
// immediately.
package store

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MovieRepository is the persistence contract of the movie catalog.
type MovieRepository interface {
	// ListAll returns every stored movie ordered by id.
	ListAll(ctx context.Context) ([]models.Movie, error)

	// GetByID returns the movie with the given id or ErrMovieNotFound.
	GetByID(ctx context.Context, id int64) (models.Movie, error)

	// ListByCategory returns the movies whose category equals category
	// exactly (case-sensitive). An empty slice means no match.
	ListByCategory(ctx context.Context, category string) ([]models.Movie, error)

	// Create inserts movie and returns it with the id assigned by the store.
	// Any id set on movie is ignored.
	Create(ctx context.Context, movie models.Movie) (models.Movie, error)

	// Update replaces every mutable field of the movie with the given id.
	// found is false when no such movie exists; nothing is changed then.
	Update(ctx context.Context, id int64, movie models.Movie) (found bool, err error)

	// Delete removes the movie with the given id.
	// found is false when no such movie exists.
	Delete(ctx context.Context, id int64) (found bool, err error)
}
