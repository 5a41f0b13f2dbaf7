// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// route is one entry of the routing table. Protected routes are served only
// to requests carrying an admin bearer token.
type route struct {
	method    string
	pattern   string
	protected bool
	handler   http.HandlerFunc
}

func (h *Handler) routes() []route {
	return []route{
		{method: http.MethodGet, pattern: "/", handler: h.home},
		{method: http.MethodPost, pattern: "/login", handler: h.login},
		{method: http.MethodGet, pattern: "/version", handler: h.getServerVersion},
		{method: http.MethodGet, pattern: "/metrics", handler: promhttp.Handler().ServeHTTP},

		{method: http.MethodGet, pattern: "/movies", protected: true, handler: h.listMovies},
		{method: http.MethodGet, pattern: "/movies/", protected: true, handler: h.listMoviesByCategory},
		{method: http.MethodGet, pattern: "/movies/{id}", protected: true, handler: h.getMovie},
		{method: http.MethodPost, pattern: "/movies", protected: true, handler: h.createMovie},
		{method: http.MethodPut, pattern: "/movies/{id}", protected: true, handler: h.updateMovie},
		{method: http.MethodDelete, pattern: "/movies/{id}", protected: true, handler: h.deleteMovie},
	}
}

// Init builds the router: global middleware first, then the routing table.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecover,
		middleware.Compress(5, "application/json", "text/html", "text/plain"),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	table := h.routes()

	// routes without authorization
	router.Group(func(r chi.Router) {
		for _, rt := range table {
			if !rt.protected {
				r.Method(rt.method, rt.pattern, rt.handler)
			}
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		for _, rt := range table {
			if rt.protected {
				r.Method(rt.method, rt.pattern, rt.handler)
			}
		}
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
