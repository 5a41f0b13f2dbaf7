// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		AdminEmail:    "admin@gmail.com",
		AdminPassword: "admin",
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-movie-catalog",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(t *testing.T) *authService {
	t.Helper()
	svc, err := newAuthService(testAppConfig(), bcrypt.MinCost, logger.Nop())
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_HashesAdminPassword(t *testing.T) {
	svc := newTestAuthService(t)

	assert.NotEqual(t, []byte("admin"), svc.adminPasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(svc.adminPasswordHash, []byte("admin")))
}

func TestNewAuthService_PasswordTooLong(t *testing.T) {
	cfg := testAppConfig()
	cfg.AdminPassword = strings.Repeat("p", 73)

	_, err := NewAuthService(cfg, logger.Nop())

	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "admin", user: models.User{Email: "admin@gmail.com", Password: "admin"}},
		{name: "wrong password", user: models.User{Email: "admin@gmail.com", Password: "nope"}, wantErr: ErrInvalidCredentials},
		{name: "wrong email", user: models.User{Email: "user@gmail.com", Password: "admin"}, wantErr: ErrInvalidCredentials},
		{name: "email differs in case", user: models.User{Email: "Admin@gmail.com", Password: "admin"}, wantErr: ErrInvalidCredentials},
		{name: "empty", user: models.User{}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(ctx, tt.user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "admin@gmail.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "admin@gmail.com", parsed.Email())
	assert.Equal(t, "go-movie-catalog", parsed.Claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.Claims.ExpiresAt.Time, 5*time.Second)
}

func TestAuthService_CreateToken_EmptyEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("go-movie-catalog", "admin@gmail.com", time.Hour, "another-key")
	require.NoError(t, err)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "admin@gmail.com", time.Hour, "test-sign-key")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":       "garbage",
		"empty":         "",
		"wrong key":     foreign.String(),
		"wrong issuer":  otherIssuer.String(),
		"tampered sign": otherIssuer.String() + "x",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenDuration = time.Millisecond
	svc, err := newAuthService(cfg, bcrypt.MinCost, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "admin@gmail.com"})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = svc.ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Authorize(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	admin, err := svc.CreateToken(ctx, models.User{Email: "admin@gmail.com"})
	require.NoError(t, err)
	assert.NoError(t, svc.Authorize(ctx, admin))

	user, err := svc.CreateToken(ctx, models.User{Email: "user@gmail.com"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Authorize(ctx, user), ErrForbidden)
}
