// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdminConfigs indicates a missing admin email or password.
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidTokenConfigs indicates a missing sign key or issuer, or a
	// non-positive token duration.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
