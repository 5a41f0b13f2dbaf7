// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// Rules reported for input that could not be decoded at all.
const (
	FieldBody     = "body"
	RuleMalformed = "json"
	RuleInteger   = "int"
)

// ValidationError carries the list of violated field constraints.
type ValidationError struct {
	Violations []models.FieldViolation
	cause      error
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", v.Field, v.Rule, v.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Rule))
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// NewMalformedBodyError reports a request body that is not valid JSON for
// the expected type.
func NewMalformedBodyError(cause error) *ValidationError {
	return &ValidationError{
		Violations: []models.FieldViolation{{Field: FieldBody, Rule: RuleMalformed}},
		cause:      cause,
	}
}

// NewParamTypeError reports a path or query parameter that cannot be
// converted to the expected type, e.g. a non-numeric id.
func NewParamTypeError(field, rule string, cause error) *ValidationError {
	return &ValidationError{
		Violations: []models.FieldViolation{{Field: field, Rule: rule}},
		cause:      cause,
	}
}
