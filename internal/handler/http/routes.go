package http

import (
	"compress/gzip"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		withGzipRequest,
		middleware.Compress(gzip.DefaultCompression, compressedTypes...),
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/state", h.getState)
		r.Get("/activity", h.getActivity)
		r.Delete("/error", h.dismissError)
		r.Post("/session/reset", h.resetSession)

		r.Post("/profile", h.onboard)
		r.Post("/profile/verify", h.verifyIdentity)
		r.Post("/system-check", h.runSystemCheck)
		r.Post("/security-actions", h.checkSecurityAction)

		r.Route("/review", func(r chi.Router) {
			r.Post("/report", h.reportSuspicion)
			r.Post("/self", h.selfReport)
			r.Post("/breach", h.detectBreach)
			r.Post("/verify", h.verifyReviewIdentity)
			r.Post("/confirm", h.confirmCompromise)
			r.Post("/dismiss", h.dismissFalseAlarm)
		})

		r.Post("/alerts", h.sendAlerts)
		r.Post("/alerts/additional", h.sendAdditionalAlert)

		r.Route("/recovery", func(r chi.Router) {
			r.Post("/message", h.composeRecoveryMessage)
			r.Post("/initiate", h.initiateRecovery)
			r.Post("/view", h.viewRecovery)
			r.Post("/requests", h.sendRecoveryRequests)
			r.Post("/votes", h.simulateVotes)
			r.Post("/complete", h.completeRecovery)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", h.inviteContact)
			r.Post("/check-expiry", h.checkInvitationExpiry)
			r.Put("/{contactID}", h.updateContact)
			r.Delete("/{contactID}", h.removeContact)
			r.Post("/{contactID}/resend", h.resendInvitation)
			r.Post("/{contactID}/accept", h.acceptInvitation)
			r.Post("/{contactID}/flag", h.flagSuspicion)
		})

		r.Post("/notifications/{notificationID}/read", h.markNotificationRead)
	})

	router.MethodNotAllowed(methodNotAllowed)

	return router
}
