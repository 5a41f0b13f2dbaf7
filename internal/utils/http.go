// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// WriteJSON serializes data to JSON and writes it with the given status.
//
// HTML characters are written as is, so acknowledgement messages and movie
// overviews reach clients unescaped. If encoding fails nothing but a plain
// 500 is written and the encoding error is returned.
//
// It returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	// Encode terminates the document with a newline
	body := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	return WriteText(w, ContentTypeJSON, body, statusCode)
}

// WriteText writes body verbatim under the given content type.
func WriteText(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
