package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/reclaim/models"
)

func (h *Handler) sendAlerts(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.SendAlertsToContacts(r.Context()) })
}

func (h *Handler) sendAdditionalAlert(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	h.run(w, r, func() error { return h.service.SendAdditionalAlert(r.Context(), req) })
}

func (h *Handler) composeRecoveryMessage(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	msg, err := h.service.ComposeRecoveryMessage(r.Context(), req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, msg, http.StatusOK)
}

func (h *Handler) initiateRecovery(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.InitiateRecovery(r.Context()) })
}

func (h *Handler) viewRecovery(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.ViewRecoveryProcess(r.Context()) })
}

func (h *Handler) sendRecoveryRequests(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	h.run(w, r, func() error { return h.service.SendRecoveryRequests(r.Context(), req.Message) })
}

func (h *Handler) simulateVotes(w http.ResponseWriter, r *http.Request) {
	tally, err := h.service.SimulateContactRecoveryVotes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, tally, http.StatusOK)
}

func (h *Handler) completeRecovery(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.CompleteRecovery(r.Context()) })
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "notificationID")
	h.run(w, r, func() error { return h.service.MarkNotificationRead(r.Context(), id) })
}
