package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/reclaim/models"
)

func (h *Handler) inviteContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if !decodeJSON(w, r, &input, false) {
		return
	}

	contact, err := h.service.InviteContact(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, contact, http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if !decodeJSON(w, r, &input, false) {
		return
	}
	h.contactOp(w, r, func(ctx context.Context, id string) (models.Contact, error) {
		return h.service.UpdateContact(ctx, id, input)
	})
}

func (h *Handler) removeContact(w http.ResponseWriter, r *http.Request) {
	h.contactOp(w, r, h.service.RemoveContact)
}

func (h *Handler) resendInvitation(w http.ResponseWriter, r *http.Request) {
	h.contactOp(w, r, h.service.ResendInvitation)
}

func (h *Handler) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	h.contactOp(w, r, h.service.AcceptInvitation)
}

func (h *Handler) checkInvitationExpiry(w http.ResponseWriter, r *http.Request) {
	n := h.service.CheckInvitationExpiry(r.Context())
	h.writeJSON(w, r, models.ExpiryResult{Expired: n}, http.StatusOK)
}

func (h *Handler) contactOp(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (models.Contact, error)) {
	contact, err := op(r.Context(), chi.URLParam(r, "contactID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, contact, http.StatusOK)
}
