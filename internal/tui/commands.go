package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/reclaim/models"
)

type snapshotOp func(ctx context.Context) (models.Snapshot, error)

type contactOp func(ctx context.Context, contactID string) (models.Contact, error)

func (m *dashboardModel) cmdSnapshot(status string, op snapshotOp) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		snap, err := op(ctx)
		return snapshotMsg{snap: snap, status: status, err: err}
	}
}

func (m *dashboardModel) cmdRefresh() tea.Cmd {
	return m.cmdSnapshot("", m.api.State)
}

func (m *dashboardModel) cmdContact(verb, contactID string, op contactOp) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		c, err := op(ctx, contactID)
		return contactMsg{contact: c, verb: verb, err: err}
	}
}

func (m *dashboardModel) cmdInvite(input models.ContactInput) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		c, err := api.InviteContact(ctx, input)
		return contactMsg{contact: c, verb: "invited", err: err}
	}
}

func (m *dashboardModel) cmdUpdateContact(contactID string, input models.ContactInput) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		c, err := api.UpdateContact(ctx, contactID, input)
		return contactMsg{contact: c, verb: "updated", err: err}
	}
}

func (m *dashboardModel) cmdCompose(message string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		composed, err := api.ComposeRecoveryMessage(ctx, message)
		return composedMsg{message: composed.Message, err: err}
	}
}

func (m *dashboardModel) cmdVotes() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		tally, err := api.SimulateVotes(ctx)
		return votesMsg{tally: tally, err: err}
	}
}

func (m *dashboardModel) cmdExpiry() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		n, err := api.CheckInvitationExpiry(ctx)
		return expiryMsg{expired: n, err: err}
	}
}

func scheduleRefresh(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
