package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/internal/utils"
)

// decodeJSON reads the request body into v. An empty body is accepted when
// optional is set and leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}

	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
	return false
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeSnapshot answers a successful operation with the current session.
func (h *Handler) writeSnapshot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.service.Snapshot(), http.StatusOK)
}

// run executes op and answers with the session snapshot or the mapped error.
func (h *Handler) run(w http.ResponseWriter, r *http.Request, op func() error) {
	if err := op(); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeSnapshot(w, r)
}
