// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/reclaim/internal/adapter"
)

// humanizeError turns adapter errors into a one-line message for the status
// bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Lifecycle server is unreachable"
	}

	switch {
	case errors.Is(err, adapter.ErrRejected):
		return "Not allowed right now: " + strings.TrimPrefix(err.Error(), adapter.ErrRejected.Error()+": ")
	case errors.Is(err, adapter.ErrNoActiveContacts):
		return "No active contacts to notify. Invite a trusted contact and wait for them to accept."
	}

	return err.Error()
}
