// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/rs/zerolog"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that admits only the admin identity.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and checks it via
// [service.AuthService.Authorize]. On success the token's email is stored in
// the request context under [utils.EmailCtxKey] and added to the request
// logger before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader], [ErrInvalidAuthorizationScheme] or [ErrEmptyToken]).
//   - The token is expired, malformed or badly signed ([service.ErrInvalidToken]).
//
// A valid token issued for any other email is rejected with HTTP 403
// Forbidden ([service.ErrForbidden]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err = h.services.AuthService.Authorize(ctx, token); err != nil {
			writeError(w, r, err)
			return
		}

		// Store the authenticated email in the context and in the request logger.
		email := token.Email()
		ctx = context.WithValue(ctx, utils.EmailCtxKey, email)
		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("email", email)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is compared case-insensitively. It returns the following
// sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header has no space-separated
//     credential part at all.
//   - [ErrInvalidAuthorizationScheme] — if the scheme is not Bearer.
//   - [ErrEmptyToken] — if the credential part is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimLeft(authHeader, " \t"), " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationScheme
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
