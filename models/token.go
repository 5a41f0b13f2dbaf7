// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, iat, exp)
// and adds the Email of the authenticated user, which the access guard
// compares with the configured admin address.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the address the token was issued for.
	Email string `json:"email"`
}

// Token wraps a JWT with the claims it carries.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Email returns the email claim of the token.
func (t *Token) Email() string {
	return t.Claims.Email
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
