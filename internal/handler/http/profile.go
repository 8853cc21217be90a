package http

import (
	"net/http"

	"github.com/MKhiriev/reclaim/models"
)

func (h *Handler) onboard(w http.ResponseWriter, r *http.Request) {
	var req models.OnboardRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	profile, err := h.service.Onboard(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, profile, http.StatusCreated)
}

func (h *Handler) verifyIdentity(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.VerifyIdentity(r.Context()) })
}

func (h *Handler) runSystemCheck(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.RunSystemCheck(r.Context()) })
}

func (h *Handler) checkSecurityAction(w http.ResponseWriter, r *http.Request) {
	var req models.SecurityActionRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	h.run(w, r, func() error { return h.service.CheckSecurityAction(r.Context(), req) })
}
