package http

import (
	"net/http"
)

const (
	buildDateHeader   = "X-Build-Date"
	buildCommitHeader = "X-Build-Commit"
)

// getServerVersion answers with the plain version string. Build date and
// commit travel as headers when they were set at link time.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if date := h.buildInfo.BuildDate(); date != "" {
		w.Header().Set(buildDateHeader, date)
	}
	if commit := h.buildInfo.BuildCommit(); commit != "" {
		w.Header().Set(buildCommitHeader, commit)
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.buildInfo.BuildVersion()))
}
