// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the movie catalog.
//
// It exposes the routing table, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, panic recovery,
// request deadlines and bearer-token authentication are handled in this
// package before requests are delegated to the service layer.
package http
