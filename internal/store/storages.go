// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-movie-catalog/internal/logger"

// Storages groups every repository the services depend on.
type Storages struct {
	MovieRepository MovieRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		MovieRepository: NewMovieRepository(db, log),
	}
}
