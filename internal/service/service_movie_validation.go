// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// MovieValidationService checks movie bodies and lookup parameters before
// handing the call to the wrapped MovieService. Invalid input never reaches
// the store.
type MovieValidationService struct {
	inner     MovieService
	validator validators.Validator
}

func NewMovieValidationService() MovieServiceWrapper {
	return &MovieValidationService{
		validator: validators.NewMovieValidator(),
	}
}

func (v *MovieValidationService) List(ctx context.Context) ([]models.Movie, error) {
	return v.inner.List(ctx)
}

func (v *MovieValidationService) Get(ctx context.Context, id int64) (models.Movie, error) {
	if err := v.validator.Validate(ctx, models.MovieLookup{ID: id}); err != nil {
		return models.Movie{}, fmt.Errorf("error during movie id validation: %w", err)
	}

	return v.inner.Get(ctx, id)
}

func (v *MovieValidationService) ListByCategory(ctx context.Context, category string) ([]models.Movie, error) {
	if err := v.validator.Validate(ctx, models.CategoryQuery{Category: category}); err != nil {
		return nil, fmt.Errorf("error during category validation: %w", err)
	}

	return v.inner.ListByCategory(ctx, category)
}

func (v *MovieValidationService) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if err := v.validator.Validate(ctx, movie); err != nil {
		return models.Movie{}, fmt.Errorf("error during movie validation before saving: %w", err)
	}

	return v.inner.Create(ctx, movie)
}

func (v *MovieValidationService) Update(ctx context.Context, id int64, movie models.Movie) error {
	if err := v.validator.Validate(ctx, movie); err != nil {
		return fmt.Errorf("error during movie validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, movie)
}

func (v *MovieValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *MovieValidationService) Wrap(wrapped MovieService) MovieService {
	v.inner = wrapped
	return v
}
