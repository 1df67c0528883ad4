// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method is answered with 404
// and an invalid_request envelope instead of chi's bare 405, so the shell
// always receives JSON.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		_, _ = utils.WriteJSON(w, models.Response{
			Status: models.StatusError,
			Error:  invalidRequest(r.Method + " " + r.URL.Path + " is not supported"),
		}, http.StatusNotFound)
	}
}
