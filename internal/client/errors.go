// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
	ErrInvalidID      = errors.New("movie id must be an integer")
	ErrInvalidMovie   = errors.New("movie must be a JSON object")
)
