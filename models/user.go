// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the login credential sent to POST /login.
// It is never persisted; the server compares it with the configured admin
// credential on every login attempt.
type User struct {
	// Email identifies the user and ends up in the token's email claim.
	Email string `json:"email" validate:"required"`

	// Password is the plain-text password as typed by the user.
	// It must never be logged.
	Password string `json:"password" validate:"required"`
}
