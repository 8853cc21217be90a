package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/reclaim/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// snapshotMsg carries the session after a refresh or an operation. status is
// the confirmation shown when err is nil.
type snapshotMsg struct {
	snap   models.Snapshot
	status string
	err    error
}

type onboardedMsg struct {
	profile models.UserProfile
	err     error
}

type composedMsg struct {
	message string
	err     error
}

type votesMsg struct {
	tally models.VoteTally
	err   error
}

type contactMsg struct {
	contact models.Contact
	verb    string
	err     error
}

type expiryMsg struct {
	expired int
	err     error
}

type refreshTickMsg struct{}

type clearStatusMsg struct {
	seq int
}
