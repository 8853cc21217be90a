package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/reclaim/models"
)

func (h *Handler) reportSuspicion(w http.ResponseWriter, r *http.Request) {
	var report models.SuspicionReport
	if !decodeJSON(w, r, &report, false) {
		return
	}
	h.run(w, r, func() error { return h.service.ReportSuspicion(r.Context(), report) })
}

func (h *Handler) flagSuspicion(w http.ResponseWriter, r *http.Request) {
	var report models.SuspicionReport
	if !decodeJSON(w, r, &report, true) {
		return
	}
	contactID := chi.URLParam(r, "contactID")
	h.run(w, r, func() error { return h.service.FlagSuspicion(r.Context(), contactID, report) })
}

func (h *Handler) selfReport(w http.ResponseWriter, r *http.Request) {
	var report models.SuspicionReport
	if !decodeJSON(w, r, &report, true) {
		return
	}
	h.run(w, r, func() error { return h.service.SelfReport(r.Context(), report) })
}

func (h *Handler) detectBreach(w http.ResponseWriter, r *http.Request) {
	var detection models.BreachDetection
	if !decodeJSON(w, r, &detection, false) {
		return
	}
	h.run(w, r, func() error { return h.service.DetectBreach(r.Context(), detection) })
}

func (h *Handler) verifyReviewIdentity(w http.ResponseWriter, r *http.Request) {
	var check models.IdentityCheck
	if !decodeJSON(w, r, &check, false) {
		return
	}
	h.run(w, r, func() error { return h.service.VerifyReviewIdentity(r.Context(), check) })
}

func (h *Handler) confirmCompromise(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func() error { return h.service.ConfirmCompromiseAfterReview(r.Context()) })
}

func (h *Handler) dismissFalseAlarm(w http.ResponseWriter, r *http.Request) {
	var req models.DismissRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	h.run(w, r, func() error { return h.service.DismissFalseAlarm(r.Context(), req) })
}
