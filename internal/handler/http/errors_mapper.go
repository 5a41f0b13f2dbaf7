// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/service"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusUnprocessableEntity,
	store.ErrInvalidMovieData: http.StatusUnprocessableEntity,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidAuthorizationScheme: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrForbidden:          http.StatusForbidden,

	store.ErrMovieNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and the body shape
// that goes with it:
//
//	422 → {"message":"validation failed","errors":[...]}
//	404 → {"message":"not found"}
//	401/403 → {"message":"<reason>"}
//	500 → {"error":"<err text>"}
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch status {
	case http.StatusUnprocessableEntity:
		log.Debug().Err(err).Msg("request rejected by validation")
		body := models.ValidationErrorResponse{Message: validators.ErrValidation.Error()}
		var vErr *validators.ValidationError
		if errors.As(err, &vErr) {
			body.Errors = vErr.Violations
		}
		utils.WriteJSON(w, body, status)
	case http.StatusNotFound:
		utils.WriteJSON(w, models.MessageResponse{Message: msgNotFound}, status)
	case http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
	default:
		log.Warn().Err(err).Int("status", status).Send()
		utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, status)
	}
}

// messageFromError returns the text of the sentinel err matches, so wrapped
// context never leaks into 4xx bodies.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
