// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the HTTP implementation of
// [CatalogAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the resty client with it and the
// request timeout.
func NewHTTPCatalogAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpCatalogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized starts a request carrying the stored bearer token.
func (h *httpCatalogAdapter) authorized(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token())
}

// Login POSTs the credential to /login. The server answers with the token
// as a bare JSON string.
func (h *httpCatalogAdapter) Login(ctx context.Context, user models.User) error {
	var token string

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("login: %w: empty token", ErrUnauthorized)
	}

	h.SetToken(token)
	h.logger.Debug().Str("email", user.Email).Msg("logged in")
	return nil
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpCatalogAdapter) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie

	resp, err := h.authorized(ctx).
		SetResult(&movies).
		Get("/movies")
	if err != nil {
		return nil, fmt.Errorf("list movies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return movies, nil
}

func (h *httpCatalogAdapter) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	var movie models.Movie

	resp, err := h.authorized(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&movie).
		Get("/movies/{id}")
	if err != nil {
		return models.Movie{}, fmt.Errorf("get movie request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Movie{}, err
	}

	return movie, nil
}

func (h *httpCatalogAdapter) ListMoviesByCategory(ctx context.Context, category string) ([]models.Movie, error) {
	var movies []models.Movie

	resp, err := h.authorized(ctx).
		SetQueryParam("category", category).
		SetResult(&movies).
		Get("/movies/")
	if err != nil {
		return nil, fmt.Errorf("list movies by category request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return movies, nil
}

func (h *httpCatalogAdapter) CreateMovie(ctx context.Context, movie models.Movie) (string, error) {
	var ack models.MessageResponse

	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(movie).
		SetResult(&ack).
		Post("/movies")
	if err != nil {
		return "", fmt.Errorf("create movie request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return ack.Message, nil
}

func (h *httpCatalogAdapter) UpdateMovie(ctx context.Context, id int64, movie models.Movie) (string, error) {
	var ack models.MessageResponse

	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(movie).
		SetResult(&ack).
		Put("/movies/{id}")
	if err != nil {
		return "", fmt.Errorf("update movie request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return ack.Message, nil
}

func (h *httpCatalogAdapter) DeleteMovie(ctx context.Context, id int64) (string, error) {
	var ack models.MessageResponse

	resp, err := h.authorized(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&ack).
		Delete("/movies/{id}")
	if err != nil {
		return "", fmt.Errorf("delete movie request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return ack.Message, nil
}
