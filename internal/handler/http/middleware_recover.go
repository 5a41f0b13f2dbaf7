// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// withRecover turns a panic anywhere down the chain into HTTP 500 with body
// {"error": "<panic text>"}. If the handler had already sent a status the
// response is left as is. http.ErrAbortHandler is re-panicked so the
// server can abort the connection as usual.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			// a handler that already sent its status keeps it
			if rw.wroteHeader {
				return
			}
			utils.WriteJSON(rw, models.ErrorResponse{Error: fmt.Sprint(rec)}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
