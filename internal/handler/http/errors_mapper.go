package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/reclaim/internal/contacts"
	"github.com/MKhiriev/reclaim/internal/lifecycle"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/internal/notify"
	"github.com/MKhiriev/reclaim/internal/store"
	"github.com/MKhiriev/reclaim/internal/validators"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrValidation, http.StatusBadRequest},
	{contacts.ErrContactNotFound, http.StatusNotFound},
	{notify.ErrNotificationNotFound, http.StatusNotFound},
	{notify.ErrNoActiveContacts, http.StatusUnprocessableEntity},
	{lifecycle.ErrRejected, http.StatusConflict},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the mapped status. Client errors carry the error
// text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
