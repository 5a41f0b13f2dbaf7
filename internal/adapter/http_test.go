// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpCatalogAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPCatalogAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCatalogAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func sampleMovie() models.Movie {
	return models.Movie{ID: 1, Title: "Dark Knight", Overview: "Batman faces the Joker in Gotham", Year: 2008, Rating: 9, Category: "Action"}
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: " https://movies.example.com ", want: "https://movies.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCatalogAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPCatalogAdapter(config.ClientAdapter{}, logger.Nop())

	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	user := models.User{Email: "admin@gmail.com", Password: "admin"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var got models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, user, got)

		writeJSON(w, http.StatusOK, "header.payload.sig")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Login(context.Background(), user))

	assert.Equal(t, "header.payload.sig", a.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.User{Email: "x", Password: "y"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "invalid credentials")
	assert.Empty(t, a.Token())
}

// ── movies ──────────────────────────────────────────────────────────────────

func TestListMovies_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.Movie{sampleMovie()})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tkn ")

	movies, err := a.ListMovies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Movie{sampleMovie()}, movies)
}

func TestGetMovie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movies/1", r.URL.Path)
		writeJSON(w, http.StatusOK, sampleMovie())
	}))
	defer srv.Close()

	movie, err := newTestAdapter(t, srv.URL).GetMovie(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, sampleMovie(), movie)
}

func TestGetMovie_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetMovie(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMoviesByCategory_SendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/", r.URL.Path)
		assert.Equal(t, "Sci-Fi", r.URL.Query().Get("category"))
		writeJSON(w, http.StatusOK, []models.Movie{})
	}))
	defer srv.Close()

	movies, err := newTestAdapter(t, srv.URL).ListMoviesByCategory(context.Background(), "Sci-Fi")

	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestCreateMovie_ReturnsAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var got models.Movie
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Dark Knight", got.Title)
		writeJSON(w, http.StatusCreated, models.MessageResponse{Message: "Movie successfully added ✅"})
	}))
	defer srv.Close()

	msg, err := newTestAdapter(t, srv.URL).CreateMovie(context.Background(), sampleMovie())

	require.NoError(t, err)
	assert.Equal(t, "Movie successfully added ✅", msg)
}

func TestCreateMovie_Validation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Message: "validation failed",
			Errors:  []models.FieldViolation{{Field: "title", Rule: "min", Param: "5"}, {Field: "body", Rule: "json"}},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateMovie(context.Background(), models.Movie{})

	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "validation failed: title: min=5, body: json")
}

func TestUpdateMovie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/movies/7", r.URL.Path)
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Movie successfully updated ✅"})
	}))
	defer srv.Close()

	msg, err := newTestAdapter(t, srv.URL).UpdateMovie(context.Background(), 7, sampleMovie())

	require.NoError(t, err)
	assert.Equal(t, "Movie successfully updated ✅", msg)
}

func TestDeleteMovie_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "Movie not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DeleteMovie(context.Background(), 3)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "Movie not found")
}

func TestForbiddenAndServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{name: "forbidden", status: http.StatusForbidden, body: models.MessageResponse{Message: "credentials are wrong"}, wantErr: ErrForbidden},
		{name: "internal", status: http.StatusInternalServerError, body: models.ErrorResponse{Error: "boom"}, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).ListMovies(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.0.0"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", version)
}
