// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/utils"
)

const homePage = `<h1 style="font-size: 100px;">hello cosmos</h1>`

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, utils.ContentTypeHTML, []byte(homePage), http.StatusOK)
}
