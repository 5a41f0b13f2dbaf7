// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEmailFromContext(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		wantEmail string
		wantOK    bool
	}{
		{name: "present", ctx: context.WithValue(context.Background(), EmailCtxKey, "admin@gmail.com"), wantEmail: "admin@gmail.com", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), EmailCtxKey, 42)},
		{name: "empty string", ctx: context.WithValue(context.Background(), EmailCtxKey, "")},
		{name: "plain string key does not collide", ctx: context.WithValue(context.Background(), "email", "x@y.z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, ok := GetEmailFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEmail, email)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "email", EmailCtxKey.String())
}
