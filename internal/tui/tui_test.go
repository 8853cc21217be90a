package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/reclaim/internal/adapter"
	"github.com/MKhiriev/reclaim/internal/mock"
	"github.com/MKhiriev/reclaim/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+v":
		return tea.KeyMsg{Type: tea.KeyCtrlV}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func snapshotWith(status models.AccountStatus, contacts ...models.Contact) models.Snapshot {
	return models.Snapshot{
		Profile:  &models.UserProfile{UserID: "usr_1", Name: "Demo User", CurrentStatus: status},
		Contacts: contacts,
	}
}

func newTestDashboard(t *testing.T, snap models.Snapshot) (*dashboardModel, *mock.MockServerAdapter) {
	t.Helper()
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	m := newDashboardModel(context.Background(), api)
	m.ticking = true
	m.copyText = func(string) error { return nil }
	m.Update(snapshotMsg{snap: snap})
	return m, api
}

// exec runs cmd and returns its message; it fails on a nil command.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// ── dashboard ─────────────────────────────────────────────────────────────────

func TestDashboard_InitLoadsState(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	m := newDashboardModel(context.Background(), api)
	m.ticking = true

	snap := snapshotWith(models.StatusSafe)
	api.EXPECT().State(gomock.Any()).Return(snap, nil)

	msg := exec(t, m.Init())
	m.Update(msg)

	assert.True(t, m.loaded)
	assert.Equal(t, "Demo User", m.snap.Profile.Name)
	assert.Contains(t, m.View(), "Demo User")
}

func TestDashboard_NoProfileNavigatesToOnboarding(t *testing.T) {
	m, _ := newTestDashboard(t, models.Snapshot{})

	_, cmd := m.Update(snapshotMsg{snap: models.Snapshot{}})
	assert.Equal(t, NavigateTo{Page: pageOnboard}, exec(t, cmd))
	assert.False(t, m.ticking)
}

func TestDashboard_ConfirmCompromiseUnderReview(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusUnderReview))

	after := snapshotWith(models.StatusCompromised)
	api.EXPECT().ConfirmCompromise(gomock.Any()).Return(after, nil)

	_, cmd := m.Update(keyPress("c"))
	assert.True(t, m.busy)

	m.Update(exec(t, cmd))
	assert.False(t, m.busy)
	assert.Equal(t, models.StatusCompromised, m.snap.Profile.CurrentStatus)
	assert.Equal(t, "Compromise confirmed", m.status)
}

func TestDashboard_IdentityKeyDependsOnStatus(t *testing.T) {
	t.Run("under review", func(t *testing.T) {
		m, api := newTestDashboard(t, snapshotWith(models.StatusUnderReview))
		api.EXPECT().VerifyReviewIdentity(gomock.Any(), models.IdentityCheck{Success: true}).Return(snapshotWith(models.StatusUnderReview), nil)

		_, cmd := m.Update(keyPress("i"))
		exec(t, cmd)
	})

	t.Run("safe", func(t *testing.T) {
		m, api := newTestDashboard(t, snapshotWith(models.StatusSafe))
		api.EXPECT().VerifyIdentity(gomock.Any()).Return(snapshotWith(models.StatusSafe), nil)

		_, cmd := m.Update(keyPress("i"))
		exec(t, cmd)
	})
}

func TestDashboard_RejectedOperationShowsReason(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusSafe))
	api.EXPECT().SendAlerts(gomock.Any()).
		Return(models.Snapshot{}, fmt.Errorf("%w: send alerts: status is safe", adapter.ErrRejected))

	_, cmd := m.Update(keyPress("a"))
	m.Update(exec(t, cmd))

	assert.Equal(t, "Not allowed right now: send alerts: status is safe", m.errMsg)
	// the last good snapshot stays on screen
	assert.Equal(t, models.StatusSafe, m.snap.Profile.CurrentStatus)
}

func TestDashboard_BusyIgnoresSecondOperation(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusSafe))
	api.EXPECT().RunSystemCheck(gomock.Any()).Return(snapshotWith(models.StatusSafe), nil).Times(1)

	_, first := m.Update(keyPress("s"))
	_, second := m.Update(keyPress("s"))

	assert.Nil(t, second)
	exec(t, first)
}

func TestDashboard_ComposeCopiesToClipboard(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusRecovering))
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	api.EXPECT().ComposeRecoveryMessage(gomock.Any(), "").Return(models.ComposedMessage{Message: "Please help me recover"}, nil)

	m.Update(keyPress("o"))
	require.NotNil(t, m.message)

	_, cmd := m.Update(keyPress("ctrl+s"))
	assert.Nil(t, m.message)
	m.Update(exec(t, cmd))

	assert.Equal(t, "Please help me recover", copied)
	assert.Equal(t, "Please help me recover", m.composed)
	assert.Equal(t, "Recovery message copied to clipboard", m.status)
}

func TestDashboard_ClipboardFailureStillShowsMessage(t *testing.T) {
	m, _ := newTestDashboard(t, snapshotWith(models.StatusRecovering))
	m.copyText = func(string) error { return errors.New("no clipboard") }

	m.Update(composedMsg{message: "text"})

	assert.Equal(t, "text", m.composed)
	assert.Contains(t, m.status, "clipboard unavailable")
	assert.Contains(t, m.View(), "text")
}

func TestDashboard_AdditionalAlertRequiresMessage(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusCompromised))

	m.Update(keyPress("m"))
	require.NotNil(t, m.message)

	_, cmd := m.Update(keyPress("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Message is required", m.message.errMsg)

	api.EXPECT().SendAdditionalAlert(gomock.Any(), "call me").Return(snapshotWith(models.StatusCompromised), nil)
	m.Update(keyPress("call me"))
	_, cmd = m.Update(keyPress("ctrl+s"))
	m.Update(exec(t, cmd))

	assert.Equal(t, "Additional alert sent", m.status)
}

func TestDashboard_InviteContact(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusSafe))
	m.Update(keyPress("tab"))
	require.Equal(t, tabContacts, m.tab)

	m.Update(keyPress("n"))
	require.NotNil(t, m.form)

	m.Update(keyPress("Dana"))
	m.Update(keyPress("tab"))
	m.Update(keyPress("dana@example.com"))

	want := models.ContactInput{Name: "Dana", ContactMethod: "dana@example.com", Type: models.ContactTypeEmail}
	api.EXPECT().InviteContact(gomock.Any(), want).Return(models.Contact{ContactID: "ctc_1", Name: "Dana"}, nil)

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, m.form)

	m.Update(exec(t, cmd))
	assert.Equal(t, "Dana invited", m.status)
}

func TestDashboard_InviteFormNeedsNameAndContact(t *testing.T) {
	m, _ := newTestDashboard(t, snapshotWith(models.StatusSafe))
	m.tab = tabContacts

	m.Update(keyPress("n"))
	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	require.NotNil(t, m.form)
	assert.Equal(t, "Name and contact are required", m.form.errMsg)

	m.Update(keyPress("esc"))
	assert.Nil(t, m.form)
}

func TestDashboard_ContactActions(t *testing.T) {
	alice := models.Contact{ContactID: "ctc_a", Name: "Alice", Status: models.ContactPendingInvitation}
	bob := models.Contact{ContactID: "ctc_b", Name: "Bob", Status: models.ContactActive}
	m, api := newTestDashboard(t, snapshotWith(models.StatusSafe, alice, bob))
	m.tab = tabContacts

	api.EXPECT().AcceptInvitation(gomock.Any(), "ctc_a").Return(alice, nil)
	_, cmd := m.Update(keyPress("enter"))
	m.Update(exec(t, cmd))
	assert.Equal(t, "Alice accepted the invitation", m.status)

	m.Update(keyPress("down"))
	assert.Equal(t, 1, m.contactIdx)

	m.Update(keyPress("ctrl+d"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), `Remove "Bob"`)

	api.EXPECT().RemoveContact(gomock.Any(), "ctc_b").Return(bob, nil)
	_, cmd = m.Update(keyPress("y"))
	assert.Nil(t, m.confirm)
	m.Update(exec(t, cmd))
	assert.Equal(t, "Bob was removed", m.status)
}

func TestDashboard_FlagSuspicionFromContact(t *testing.T) {
	alice := models.Contact{ContactID: "ctc_a", Name: "Alice", Status: models.ContactActive}
	m, api := newTestDashboard(t, snapshotWith(models.StatusSafe, alice))
	m.tab = tabContacts

	m.Update(keyPress("f"))
	require.NotNil(t, m.form)
	m.Update(keyPress("email, bank"))

	want := models.SuspicionReport{Platforms: []string{"email", "bank"}}
	api.EXPECT().FlagSuspicion(gomock.Any(), "ctc_a", want).Return(snapshotWith(models.StatusUnderReview, alice), nil)

	_, cmd := m.Update(keyPress("enter"))
	m.Update(exec(t, cmd))
	assert.Equal(t, models.StatusUnderReview, m.snap.Profile.CurrentStatus)
}

func TestDashboard_ResetNeedsConfirmation(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusCompromised))

	m.Update(keyPress("ctrl+r"))
	require.NotNil(t, m.confirm)
	m.Update(keyPress("n"))
	assert.Nil(t, m.confirm)

	api.EXPECT().ResetSession(gomock.Any()).Return(snapshotWith(models.StatusSafe), nil)
	m.Update(keyPress("ctrl+r"))
	_, cmd := m.Update(keyPress("y"))
	m.Update(exec(t, cmd))

	assert.Equal(t, models.StatusSafe, m.snap.Profile.CurrentStatus)
	assert.Equal(t, "Session reset", m.status)
}

func TestDashboard_ErrorBannerDismiss(t *testing.T) {
	snap := snapshotWith(models.StatusCompromised)
	snap.Error = "No active contacts to notify."
	m, api := newTestDashboard(t, snap)

	assert.Contains(t, m.View(), "No active contacts to notify.")

	api.EXPECT().DismissError(gomock.Any()).Return(snapshotWith(models.StatusCompromised), nil)
	_, cmd := m.Update(keyPress("x"))
	m.Update(exec(t, cmd))

	assert.Empty(t, m.snap.Error)
	assert.NotContains(t, m.View(), "No active contacts to notify.")
}

func TestDashboard_VotesAreShown(t *testing.T) {
	m, api := newTestDashboard(t, snapshotWith(models.StatusRecovering))
	tally := models.VoteTally{Voters: 3, Approved: 2, Denied: 1, Threshold: 2, Stage: models.StageFinalizing}
	api.EXPECT().SimulateVotes(gomock.Any()).Return(tally, nil)

	_, cmd := m.Update(keyPress("t"))
	m.Update(exec(t, cmd))

	require.NotNil(t, m.tally)
	assert.Equal(t, "Votes: 2 of 3 approved (needed 2)", m.status)
	assert.Contains(t, m.View(), "2 approved, 1 denied")
}

func TestDashboard_StatusClearsOnlyForLatestSeq(t *testing.T) {
	m, _ := newTestDashboard(t, snapshotWith(models.StatusSafe))

	m.setStatus("first")
	m.setStatus("second")

	m.Update(clearStatusMsg{seq: m.statusSeq - 1})
	assert.Equal(t, "second", m.status)

	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

func TestDashboard_MarkNotificationRead(t *testing.T) {
	snap := snapshotWith(models.StatusCompromised)
	snap.Notifications = []models.Notification{{NotificationID: "ntf_1", DeliveryStatus: models.DeliveryDelivered}}
	m, api := newTestDashboard(t, snap)
	m.tab = tabNotifications

	api.EXPECT().MarkNotificationRead(gomock.Any(), "ntf_1").Return(snap, nil)
	_, cmd := m.Update(keyPress("enter"))
	m.Update(exec(t, cmd))

	assert.Equal(t, "Notification marked as read", m.status)
}

// ── onboarding ────────────────────────────────────────────────────────────────

func TestOnboard_SubmitsDefaults(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	m := newOnboardModel(context.Background(), api)

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Name is required", m.errMsg)

	m.Update(keyPress("Rasul"))
	api.EXPECT().Onboard(gomock.Any(), models.OnboardRequest{Name: "Rasul", AuthMethod: defaultAuthMethod}).
		Return(models.UserProfile{UserID: "usr_1", Name: "Rasul"}, nil)

	_, cmd = m.Update(keyPress("enter"))
	_, next := m.Update(exec(t, cmd))

	assert.Equal(t, NavigateTo{Page: pageDashboard}, exec(t, next))
}

func TestOnboard_ShowsServerError(t *testing.T) {
	m := newOnboardModel(context.Background(), nil)

	m.Update(onboardedMsg{err: fmt.Errorf("%w: onboard: profile already exists", adapter.ErrRejected)})

	assert.Contains(t, m.errMsg, "profile already exists")
	assert.False(t, m.submitting)
}

// ── root ──────────────────────────────────────────────────────────────────────

type stubPage struct {
	name string
	got  []tea.Msg
}

func (p *stubPage) Init() tea.Cmd { return nil }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func TestRootModel_Routing(t *testing.T) {
	a, b := &stubPage{name: "a"}, &stubPage{name: "b"}
	root := NewRootModel(map[string]tea.Model{"a": a, "b": b}, "a", models.NewAppBuildInfo("1.0.0", "", ""))

	model, _ := root.Update(NavigateTo{Page: "b"})
	root = model.(RootModel)
	assert.Equal(t, "b", root.View())

	model, _ = root.Update(NavigateTo{Page: "missing"})
	root = model.(RootModel)
	assert.Equal(t, "b", root.View())

	model, _ = root.Update(keyPress("ctrl+v"))
	root = model.(RootModel)
	assert.Contains(t, root.View(), "1.0.0")

	// keys are swallowed while the build info window is open
	model, _ = root.Update(keyPress("q"))
	root = model.(RootModel)
	assert.Empty(t, b.got)

	model, _ = root.Update(keyPress("esc"))
	root = model.(RootModel)
	assert.Equal(t, "b", root.View())

	model, cmd := root.Update(keyPress("ctrl+c"))
	assert.True(t, model.(RootModel).quitByUser)
	assert.Equal(t, tea.Quit(), exec(t, cmd))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a, b,,c ,"))
	assert.Equal(t, []string{}, splitList(""))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unreachable", err: errors.New("dial tcp 127.0.0.1:8080: connection refused"), want: "Lifecycle server is unreachable"},
		{name: "no contacts", err: fmt.Errorf("%w: none", adapter.ErrNoActiveContacts), want: "No active contacts to notify. Invite a trusted contact and wait for them to accept."},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hel...", fitText("hello world", 6))
	assert.Equal(t, "hé", fitText("héllo", 2))
}
