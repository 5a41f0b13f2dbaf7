// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/go-chi/chi/v5"
)

const (
	idParam       = "id"
	categoryParam = "category"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.MovieService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.MovieService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) listMoviesByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get(categoryParam)

	movies, err := h.services.MovieService.ListByCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := decodeMovie(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.MovieService.Create(r.Context(), movie); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgMovieAdded}, http.StatusCreated)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := decodeMovie(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MovieService.Update(r.Context(), id, movie); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgMovieUpdated}, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MovieService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Message: msgMovieNotFound}, http.StatusNotFound)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgMovieDeleted}, http.StatusOK)
}

func movieIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, idParam), 10, 64)
	if err != nil {
		return 0, validators.NewParamTypeError(idParam, validators.RuleInteger, err)
	}

	return id, nil
}

// decodeMovie reads a movie body on top of the defaults, so omitted title,
// overview and year keep their default values. A client-supplied id is
// dropped.
func decodeMovie(r *http.Request) (models.Movie, error) {
	movie := models.NewMovieWithDefaults()
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		return models.Movie{}, validators.NewMalformedBodyError(err)
	}
	movie.ID = 0

	return movie, nil
}
