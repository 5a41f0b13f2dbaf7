// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
)

type Services struct {
	AuthService    AuthService
	MovieService   MovieService
	AppInfoService AppInfoService
}

// NewServices wires every service of the catalog. The movie service is
// wrapped with validation so nothing invalid reaches the repository.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	movieService := NewMovieValidationService().Wrap(NewMovieService(storages.MovieRepository, logger))

	return &Services{
		AuthService:    authService,
		MovieService:   movieService,
		AppInfoService: appInfoService,
	}, nil
}
