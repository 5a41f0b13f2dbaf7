// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/stretchr/testify/assert"
)

func TestWithRecover_PanicBecomes500(t *testing.T) {
	h := newTestEnv(t).handler
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("database exploded")
	})

	rr := serve(h.withRecover(next), httptest.NewRequest(http.MethodGet, "/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, models.ErrorResponse{Error: "database exploded"}, decodeBody[models.ErrorResponse](t, rr))
}

func TestWithRecover_AbortHandlerIsRepanicked(t *testing.T) {
	h := newTestEnv(t).handler
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h.withRecover(next), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecover_NoPanic(t *testing.T) {
	h := newTestEnv(t).handler
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := serve(h.withRecover(next), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestWithRecover_PanicAfterHeaderKeepsStatus(t *testing.T) {
	h := newTestEnv(t).handler
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late failure")
	})

	rr := serve(h.withRecover(next), httptest.NewRequest(http.MethodPost, "/movies", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.NotContains(t, rr.Body.String(), `"error"`)
}
