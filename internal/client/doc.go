// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the movie catalog.
//
// It logs in with the configured admin credential, runs one catalog command
// through an [adapter.CatalogAdapter] and prints the result as indented JSON.
package client
