package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/reclaim/internal/adapter"
	"github.com/MKhiriev/reclaim/models"
)

const (
	defaultRefreshEvery = 2 * time.Second
	statusTTL           = 4 * time.Second
)

type dashboardTab int

const (
	tabOverview dashboardTab = iota
	tabContacts
	tabNotifications
	tabActivity
)

var tabNames = []string{"Overview", "Contacts", "Notifications", "Activity"}

var securityChecklist = []string{
	"Changed passwords on affected platforms",
	"Enabled two-factor authentication",
	"Signed out of unknown sessions",
	"Updated recovery email and phone",
}

// dashboardModel is the main screen. It mirrors the last snapshot and maps
// keys to lifecycle operations.
type dashboardModel struct {
	ctx          context.Context
	api          adapter.ServerAdapter
	copyText     func(string) error
	now          func() time.Time
	refreshEvery time.Duration

	snap    models.Snapshot
	loaded  bool
	ticking bool
	busy    bool

	tab         dashboardTab
	contactIdx  int
	noteIdx     int
	activityTop int
	securityIdx int

	status    string
	statusSeq int
	errMsg    string
	composed  string
	tally     *models.VoteTally

	form    *fieldForm
	message *messageForm
	confirm *confirmModel
}

func newDashboardModel(ctx context.Context, api adapter.ServerAdapter) *dashboardModel {
	return &dashboardModel{
		ctx:          ctx,
		api:          api,
		copyText:     clipboard.WriteAll,
		now:          time.Now,
		refreshEvery: defaultRefreshEvery,
	}
}

// Init loads the session and starts the refresh loop so delivery progress
// shows up without key presses.
func (m *dashboardModel) Init() tea.Cmd {
	if m.ticking {
		return m.cmdRefresh()
	}
	m.ticking = true
	return tea.Batch(m.cmdRefresh(), scheduleRefresh(m.refreshEvery))
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return m.applySnapshot(msg)
	case contactMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, tea.Batch(m.setStatus(fmt.Sprintf("%s %s", msg.contact.Name, msg.verb)), m.cmdRefresh())
	case composedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.composed = msg.message
		status := "Recovery message copied to clipboard"
		if err := m.copyText(msg.message); err != nil {
			status = "Recovery message composed (clipboard unavailable)"
		}
		return m, tea.Batch(m.setStatus(status), m.cmdRefresh())
	case votesMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		tally := msg.tally
		m.tally = &tally
		return m, tea.Batch(m.setStatus(fmt.Sprintf("Votes: %d of %d approved (needed %d)", tally.Approved, tally.Voters, tally.Threshold)), m.cmdRefresh())
	case expiryMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, tea.Batch(m.setStatus(fmt.Sprintf("%d invitation(s) newly expired", msg.expired)), m.cmdRefresh())
	case refreshTickMsg:
		if !m.ticking {
			return m, nil
		}
		return m, tea.Batch(m.cmdRefresh(), scheduleRefresh(m.refreshEvery))
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	switch {
	case m.confirm != nil:
		return m.updateConfirm(msg)
	case m.form != nil:
		return m.updateForm(msg)
	case m.message != nil:
		return m.updateMessage(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.handleKey(keyMsg)
}

func (m *dashboardModel) applySnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.snap = msg.snap
	m.loaded = true
	m.clampSelection()

	if m.snap.Profile == nil {
		m.ticking = false
		return m, navigate(pageOnboard)
	}
	if msg.status == "" {
		return m, nil
	}

	m.errMsg = ""
	return m, m.setStatus(msg.status)
}

func (m *dashboardModel) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return clearStatusAfter(statusTTL, m.statusSeq)
}

// run starts op unless another operation is in flight.
func (m *dashboardModel) run(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, cmd
}

func (m *dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % dashboardTab(len(tabNames))
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.tab = (m.tab + dashboardTab(len(tabNames)) - 1) % dashboardTab(len(tabNames))
		return m, nil
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.dismiss):
		m.errMsg = ""
		if m.snap.Error == "" {
			return m, nil
		}
		return m.run(m.cmdSnapshot("Error dismissed", m.api.DismissError))
	case key.Matches(msg, keys.reset):
		m.confirm = &confirmModel{action: confirmReset, message: "Reset the session? All contacts, alerts and history are cleared."}
		return m, nil
	}

	if m.snap.Profile == nil {
		return m, nil
	}

	switch m.tab {
	case tabContacts:
		return m.handleContactsKey(msg)
	case tabNotifications:
		return m.handleNotificationsKey(msg)
	case tabActivity:
		return m.handleActivityKey(msg)
	default:
		return m.handleOverviewKey(msg)
	}
}

func (m *dashboardModel) handleOverviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	api := m.api
	status := m.snap.Profile.CurrentStatus

	if status == models.StatusUnderReview {
		switch {
		case key.Matches(msg, keys.idOK):
			return m.run(m.cmdSnapshot("Identity verified", func(ctx context.Context) (models.Snapshot, error) {
				return api.VerifyReviewIdentity(ctx, models.IdentityCheck{Success: true})
			}))
		case key.Matches(msg, keys.idFail):
			return m.run(m.cmdSnapshot("Identity check failed", func(ctx context.Context) (models.Snapshot, error) {
				return api.VerifyReviewIdentity(ctx, models.IdentityCheck{Success: false})
			}))
		case key.Matches(msg, keys.confirm):
			return m.run(m.cmdSnapshot("Compromise confirmed", api.ConfirmCompromise))
		case key.Matches(msg, keys.dismissRv):
			return m.run(m.cmdSnapshot("Marked as false alarm", func(ctx context.Context) (models.Snapshot, error) {
				return api.DismissFalseAlarm(ctx, models.DismissRequest{})
			}))
		case key.Matches(msg, keys.dismissNt):
			return m.run(m.cmdSnapshot("Marked as false alarm, reporter notified", func(ctx context.Context) (models.Snapshot, error) {
				return api.DismissFalseAlarm(ctx, models.DismissRequest{NotifyReporter: true})
			}))
		}
	}

	switch {
	case key.Matches(msg, keys.verify):
		return m.run(m.cmdSnapshot("Identity verified", api.VerifyIdentity))
	case key.Matches(msg, keys.check):
		return m.run(m.cmdSnapshot("System check completed", api.RunSystemCheck))
	case key.Matches(msg, keys.security):
		action := securityChecklist[m.securityIdx%len(securityChecklist)]
		m.securityIdx++
		return m.run(m.cmdSnapshot("Checked: "+action, func(ctx context.Context) (models.Snapshot, error) {
			return api.CheckSecurityAction(ctx, models.SecurityActionRequest{Action: action})
		}))
	case key.Matches(msg, keys.self):
		m.form = newSelfReportForm()
	case key.Matches(msg, keys.breach):
		m.form = newBreachForm()
	case key.Matches(msg, keys.report):
		m.form = newReportForm()
	case key.Matches(msg, keys.alerts):
		return m.run(m.cmdSnapshot("Trusted contacts alerted", api.SendAlerts))
	case key.Matches(msg, keys.extra):
		m.message = newMessageForm(messageAdditional)
	case key.Matches(msg, keys.recover):
		return m.run(m.cmdSnapshot("Recovery started", api.InitiateRecovery))
	case key.Matches(msg, keys.view):
		return m.run(m.cmdSnapshot("Recovery process viewed", api.ViewRecovery))
	case key.Matches(msg, keys.compose):
		m.message = newMessageForm(messageCompose)
	case key.Matches(msg, keys.requests):
		m.message = newMessageForm(messageRecoveryRequest)
	case key.Matches(msg, keys.votes):
		return m.run(m.cmdVotes())
	case key.Matches(msg, keys.complete):
		return m.run(m.cmdSnapshot("Recovery completed", api.CompleteRecovery))
	}

	return m, nil
}

func (m *dashboardModel) handleContactsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.contactIdx = max(m.contactIdx-1, 0)
		return m, nil
	case key.Matches(msg, keys.down):
		m.contactIdx = min(m.contactIdx+1, max(len(m.snap.Contacts)-1, 0))
		return m, nil
	case key.Matches(msg, keys.invite):
		m.form = newInviteForm()
		return m, nil
	case key.Matches(msg, keys.expiry):
		return m.run(m.cmdExpiry())
	}

	c, ok := m.selectedContact()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		return m.run(m.cmdContact("accepted the invitation", c.ContactID, m.api.AcceptInvitation))
	case key.Matches(msg, keys.resend):
		return m.run(m.cmdContact("was sent a new invitation", c.ContactID, m.api.ResendInvitation))
	case key.Matches(msg, keys.edit):
		m.form = newEditForm(c)
	case key.Matches(msg, keys.flag):
		m.form = newFlagForm(c)
	case key.Matches(msg, keys.remove):
		m.confirm = &confirmModel{action: confirmRemove, targetID: c.ContactID, message: fmt.Sprintf("Remove %q from your trusted contacts?", c.Name)}
	}

	return m, nil
}

func (m *dashboardModel) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.noteIdx = max(m.noteIdx-1, 0)
	case key.Matches(msg, keys.down):
		m.noteIdx = min(m.noteIdx+1, max(len(m.snap.Notifications)-1, 0))
	case key.Matches(msg, keys.enter):
		if m.noteIdx >= len(m.snap.Notifications) {
			return m, nil
		}
		id := m.snap.Notifications[m.noteIdx].NotificationID
		return m.run(m.cmdSnapshot("Notification marked as read", func(ctx context.Context) (models.Snapshot, error) {
			return m.api.MarkNotificationRead(ctx, id)
		}))
	}
	return m, nil
}

func (m *dashboardModel) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.activityTop = max(m.activityTop-1, 0)
	case key.Matches(msg, keys.down):
		m.activityTop = min(m.activityTop+1, max(len(m.snap.ActivityLog)-1, 0))
	}
	return m, nil
}

func (m *dashboardModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	c := *m.confirm
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirm = nil
		switch c.action {
		case confirmReset:
			return m.run(m.cmdSnapshot("Session reset", m.api.ResetSession))
		case confirmRemove:
			return m.run(m.cmdContact("was removed", c.targetID, m.api.RemoveContact))
		}
	case key.Matches(keyMsg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m *dashboardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.form.update(msg)
	switch {
	case cancelled:
		m.form = nil
		return m, nil
	case !submitted:
		return m, cmd
	}

	op, errMsg := m.submitForm(m.form)
	if errMsg != "" {
		m.form.errMsg = errMsg
		return m, nil
	}
	m.form = nil
	return m.run(op)
}

// submitForm turns a filled form into its operation. A non-empty string
// reports a problem the user must fix first.
func (m *dashboardModel) submitForm(f *fieldForm) (tea.Cmd, string) {
	api := m.api

	switch f.purpose {
	case formInvite:
		input := f.contactInput()
		if input.Name == "" || input.ContactMethod == "" {
			return nil, "Name and contact are required"
		}
		return m.cmdInvite(input), ""
	case formEdit:
		input := f.contactInput()
		if input.Name == "" || input.ContactMethod == "" {
			return nil, "Name and contact are required"
		}
		return m.cmdUpdateContact(f.targetID, input), ""
	case formFlag:
		report := models.SuspicionReport{Platforms: splitList(f.value(0)), Description: f.value(1)}
		id := f.targetID
		return m.cmdSnapshot("Suspicion flagged, review opened", func(ctx context.Context) (models.Snapshot, error) {
			return api.FlagSuspicion(ctx, id, report)
		}), ""
	case formReport:
		if f.value(0) == "" {
			return nil, "Reporter name is required"
		}
		report := models.SuspicionReport{
			ReporterName: f.value(0),
			Relationship: f.value(1),
			Platforms:    splitList(f.value(2)),
			Description:  f.value(3),
		}
		return m.cmdSnapshot("Report received, review opened", func(ctx context.Context) (models.Snapshot, error) {
			return api.ReportSuspicion(ctx, report)
		}), ""
	case formSelfReport:
		report := models.SuspicionReport{Platforms: splitList(f.value(0)), Description: f.value(1)}
		return m.cmdSnapshot("Review opened", func(ctx context.Context) (models.Snapshot, error) {
			return api.SelfReport(ctx, report)
		}), ""
	case formBreach:
		platforms := splitList(f.value(0))
		if len(platforms) == 0 {
			return nil, "At least one platform is required"
		}
		detection := models.BreachDetection{Platforms: platforms, Reason: f.value(1)}
		return m.cmdSnapshot("Breach detected, review opened", func(ctx context.Context) (models.Snapshot, error) {
			return api.DetectBreach(ctx, detection)
		}), ""
	}

	return nil, "Unknown form"
}

func (m *dashboardModel) updateMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.message.update(msg)
	switch {
	case cancelled:
		m.message = nil
		return m, nil
	case !submitted:
		return m, cmd
	}

	api := m.api
	text := m.message.text()
	purpose := m.message.purpose
	m.message = nil

	switch purpose {
	case messageAdditional:
		return m.run(m.cmdSnapshot("Additional alert sent", func(ctx context.Context) (models.Snapshot, error) {
			return api.SendAdditionalAlert(ctx, text)
		}))
	case messageRecoveryRequest:
		return m.run(m.cmdSnapshot("Recovery requests sent", func(ctx context.Context) (models.Snapshot, error) {
			return api.SendRecoveryRequests(ctx, text)
		}))
	default:
		return m.run(m.cmdCompose(text))
	}
}

func (m *dashboardModel) selectedContact() (models.Contact, bool) {
	if m.contactIdx < 0 || m.contactIdx >= len(m.snap.Contacts) {
		return models.Contact{}, false
	}
	return m.snap.Contacts[m.contactIdx], true
}

func (m *dashboardModel) clampSelection() {
	m.contactIdx = min(m.contactIdx, max(len(m.snap.Contacts)-1, 0))
	m.noteIdx = min(m.noteIdx, max(len(m.snap.Notifications)-1, 0))
	m.activityTop = min(m.activityTop, max(len(m.snap.ActivityLog)-1, 0))
}
