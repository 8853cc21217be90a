// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/reclaim/internal/logger"
)

// methodNotAllowed replaces chi's 405 answer: a known path requested with the
// wrong method is reported as not found.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("route exists for other methods only")
	http.Error(w, "route not found", http.StatusNotFound)
}
