// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// There is no user store: the only accepted identity is the admin credential
// from the configuration, whose password is kept as a bcrypt hash.
type authService struct {
	// adminEmail is the only email allowed to log in and to use the catalog.
	adminEmail string

	// adminPasswordHash is the bcrypt hash of the configured admin password,
	// computed once at construction.
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the admin
// credential and token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) (AuthService, error) {
	return newAuthService(cfg, bcrypt.DefaultCost, logger)
}

func newAuthService(cfg config.App, cost int, logger *logger.Logger) (*authService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	return &authService{
		adminEmail:        cfg.AdminEmail,
		adminPasswordHash: hash,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}, nil
}

// Login succeeds only when user carries the admin email and password.
//
// Returns ErrInvalidCredentials on any mismatch. The password is never logged.
func (a *authService) Login(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if user.Email != a.adminEmail {
		log.Warn().Str("email", user.Email).Msg("login attempt with unknown email")
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(user.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Err(err).Str("email", user.Email).Msg("error comparing password hash")
		} else {
			log.Warn().Str("email", user.Email).Msg("wrong password")
		}
		return ErrInvalidCredentials
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's email, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature, the
// issuer and the expiration. Any validation failure (expired, wrong issuer,
// malformed, foreign signing method) is normalised to ErrInvalidToken so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// Authorize returns ErrForbidden unless the token was issued for the
// configured admin email.
func (a *authService) Authorize(ctx context.Context, token models.Token) error {
	if token.Email() != a.adminEmail {
		logger.FromContext(ctx).Warn().Str("email", token.Email()).Msg("token email is not allowed")
		return ErrForbidden
	}

	return nil
}
