// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the movie catalog server.
	// Env: CLIENT_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"http://localhost:8080"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ClientCredentials holds the login used by the client before calling
// protected endpoints.
type ClientCredentials struct {
	// Env: CLIENT_CREDENTIALS_EMAIL
	Email string `env:"EMAIL"`
	// Env: CLIENT_CREDENTIALS_PASSWORD
	Password string `env:"PASSWORD"`
}

// ClientConfig is the configuration of the cmd/client binary.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Credentials contains the login sent to POST /login.
	Credentials ClientCredentials `envPrefix:"CREDENTIALS_"`
	// LogLevel is the minimum level written to stderr.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// GetClientConfig loads the client configuration from CLIENT_-prefixed
// environment variables and validates it.
func GetClientConfig() (*ClientConfig, error) {
	var envCfg struct {
		Client ClientConfig `envPrefix:"CLIENT_"`
	}
	if err := parseEnv(&envCfg); err != nil {
		return nil, fmt.Errorf("error getting client config: %w", err)
	}

	clientCfg := envCfg.Client
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return &clientCfg, nil
}
