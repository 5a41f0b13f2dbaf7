// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of acknowledgements and not-found answers,
// e.g. {"message": "not found"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body written for unexpected failures (HTTP 500).
// Error carries the raw text of the failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldViolation describes one failed constraint of a request field.
type FieldViolation struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`
	// Rule is the constraint that failed (min, max, lte, gte, ...).
	Rule string `json:"rule"`
	// Param is the constraint argument, e.g. "5" for min=5.
	Param string `json:"param,omitempty"`
}

// ValidationErrorResponse is the body of HTTP 422 answers.
type ValidationErrorResponse struct {
	Message string           `json:"message"`
	Errors  []FieldViolation `json:"errors,omitempty"`
}
