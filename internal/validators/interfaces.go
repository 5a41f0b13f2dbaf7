// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks movie catalog input against the constraints
// declared in the `validate` struct tags of the models package.
//
// Every failure is reported as a *[ValidationError] listing one violation
// per offending field under its JSON name, so the HTTP layer can answer 422
// with a body the client can act on. Requests that never reach the struct
// validator (malformed JSON, a non-integer path id) are reported through the
// same type.
package validators

import "context"

// Validator validates a request value against all of its constraints.
type Validator interface {
	Validate(ctx context.Context, value any) error
}
