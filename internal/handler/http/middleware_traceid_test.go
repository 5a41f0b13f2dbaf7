// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{traceIDs: utils.NewUUIDGenerator(), logger: logger.New(&buf, "test", "debug")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	rr := serve(h.withTraceID(next), httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rr.Header().Get(traceIDHeader)
	id, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}

func TestWithTraceID_KeepsIncomingID(t *testing.T) {
	h := newTestEnv(t).handler
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc-123")

	rr := serve(h.withTraceID(http.NotFoundHandler()), req)

	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestEnv(t).handler
	mw := h.withTraceID(http.NotFoundHandler())

	first := serve(mw, httptest.NewRequest(http.MethodGet, "/", nil)).Header().Get(traceIDHeader)
	second := serve(mw, httptest.NewRequest(http.MethodGet, "/", nil)).Header().Get(traceIDHeader)

	assert.NotEqual(t, first, second)
}
