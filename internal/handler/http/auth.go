// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/metrics"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// login exchanges the admin credential for a bearer token. The token is
// answered as a bare JSON string.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, validators.NewMalformedBodyError(err))
		return
	}

	if err := h.validator.Validate(ctx, user); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Login(ctx, user); err != nil {
		metrics.RecordLogin(false)
		writeError(w, r, err)
		return
	}
	metrics.RecordLogin(true)

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("email", user.Email).Msg("admin successfully logged in")
	utils.WriteJSON(w, token.String(), http.StatusOK)
}
