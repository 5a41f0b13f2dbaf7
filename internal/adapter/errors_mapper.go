// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, messageOf(body))
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, messageOf(body))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, messageOf(body))
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, violationsOf(body))
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// messageOf extracts the "message" of a {"message": ...} body, falling back
// to the raw body.
func messageOf(body string) string {
	var msg models.MessageResponse
	if err := json.Unmarshal([]byte(body), &msg); err != nil || msg.Message == "" {
		return body
	}
	return msg.Message
}

// violationsOf renders a validation error body as "field: rule=param, ...".
func violationsOf(body string) string {
	var resp models.ValidationErrorResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil || len(resp.Errors) == 0 {
		return body
	}

	parts := make([]string, 0, len(resp.Errors))
	for _, v := range resp.Errors {
		if v.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", v.Field, v.Rule, v.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Rule))
	}
	return strings.Join(parts, ", ")
}
