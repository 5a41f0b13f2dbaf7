// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

type movieService struct {
	movieRepository store.MovieRepository

	logger *logger.Logger
}

func NewMovieService(movieRepository store.MovieRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		logger:          logger,
	}
}

func (m *movieService) List(ctx context.Context) ([]models.Movie, error) {
	return m.movieRepository.ListAll(ctx)
}

func (m *movieService) Get(ctx context.Context, id int64) (models.Movie, error) {
	return m.movieRepository.GetByID(ctx, id)
}

// ListByCategory turns an empty result into store.ErrMovieNotFound.
func (m *movieService) ListByCategory(ctx context.Context, category string) ([]models.Movie, error) {
	movies, err := m.movieRepository.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("no movies in category %q: %w", category, store.ErrMovieNotFound)
	}

	return movies, nil
}

func (m *movieService) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	movie.ID = 0
	created, err := m.movieRepository.Create(ctx, movie)
	if err != nil {
		return models.Movie{}, err
	}

	logMutation(ctx, created.ID, "movie created")
	return created, nil
}

func (m *movieService) Update(ctx context.Context, id int64, movie models.Movie) error {
	found, err := m.movieRepository.Update(ctx, id, movie)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("movie %d: %w", id, store.ErrMovieNotFound)
	}

	logMutation(ctx, id, "movie updated")
	return nil
}

func (m *movieService) Delete(ctx context.Context, id int64) error {
	found, err := m.movieRepository.Delete(ctx, id)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("movie %d: %w", id, store.ErrMovieNotFound)
	}

	logMutation(ctx, id, "movie deleted")
	return nil
}

// logMutation records a catalog change together with the admin who made it.
func logMutation(ctx context.Context, id int64, msg string) {
	event := logger.FromContext(ctx).Info().Int64("id", id)
	if email, ok := utils.GetEmailFromContext(ctx); ok {
		event = event.Str("admin", email)
	}
	event.Msg(msg)
}
