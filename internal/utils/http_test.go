// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{
			name:   "acknowledgement keeps emoji and html",
			data:   models.MessageResponse{Message: "Movie <b>added</b> ✅"},
			status: http.StatusCreated,
			want:   `{"message":"Movie <b>added</b> ✅"}`,
		},
		{
			name:   "bare string",
			data:   "header.payload.sig",
			status: http.StatusOK,
			want:   `"header.payload.sig"`,
		},
		{
			name:   "empty list",
			data:   []models.Movie{},
			status: http.StatusOK,
			want:   `[]`,
		},
		{
			name:   "nil",
			data:   nil,
			status: http.StatusOK,
			want:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			n, err := WriteJSON(rr, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, ContentTypeJSON, rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, rr.Body.String())
			assert.Equal(t, len(tt.want), n)
		})
	}
}

func TestWriteJSON_UnsupportedValue(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]any{"ch": make(chan int)}, http.StatusOK)

	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestWriteText(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteText(rr, ContentTypeText, []byte("v1.0.0"), http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, ContentTypeText, rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.0.0", rr.Body.String())
}
