package http

import (
	"net/http"
)

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	h.writeSnapshot(w, r)
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.service.Snapshot().ActivityLog, http.StatusOK)
}

func (h *Handler) dismissError(w http.ResponseWriter, r *http.Request) {
	h.service.DismissError()
	h.writeSnapshot(w, r)
}

func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.ResetSession(r.Context()) })
}
