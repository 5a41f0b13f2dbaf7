// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/go-playground/validator/v10"
)

// MovieValidator implements the Validator interface for the catalog's
// request models: Movie, MovieLookup, CategoryQuery and User.
//
// Constraints live in the `validate` struct tags of the models and are
// checked by go-playground/validator. Violations are reported with the
// JSON field names, so they can be returned to clients as is.
type MovieValidator struct {
	v *validator.Validate
}

// NewMovieValidator constructs a MovieValidator and returns it as the
// Validator interface.
func NewMovieValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &MovieValidator{v: v}
}

// Validate checks obj against its struct tags. Both value and pointer forms
// of every supported model are accepted, and every field is checked.
//
// Returns ErrUnsupportedType for any other type and *ValidationError when
// at least one constraint fails.
func (m *MovieValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Movie, models.MovieLookup, models.CategoryQuery, models.User:
		return m.validateStruct(ctx, value)
	case *models.Movie, *models.MovieLookup, *models.CategoryQuery, *models.User:
		if reflect.ValueOf(value).IsNil() {
			return ErrUnsupportedType
		}
		return m.validateStruct(ctx, value)
	default:
		return ErrUnsupportedType
	}
}

func (m *MovieValidator) validateStruct(ctx context.Context, obj any) error {
	err := m.v.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	violations := make([]models.FieldViolation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, models.FieldViolation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return &ValidationError{Violations: violations, cause: err}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
