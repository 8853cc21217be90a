package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/reclaim/models"
)

const activityPageSize = 15

func (m *dashboardModel) View() string {
	switch {
	case m.form != nil:
		return m.form.View()
	case m.message != nil:
		return m.message.View()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.confirm != nil {
		b.WriteString(m.confirm.View())
		return renderPage("RECLAIM", b.String(), "")
	}

	if !m.loaded {
		b.WriteString("Loading session...")
		return renderPage("RECLAIM", b.String(), "")
	}

	switch m.tab {
	case tabContacts:
		b.WriteString(m.viewContacts())
	case tabNotifications:
		b.WriteString(m.viewNotifications())
	case tabActivity:
		b.WriteString(m.viewActivity())
	default:
		b.WriteString(m.viewOverview())
	}

	return renderPage("RECLAIM", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *dashboardModel) viewHeader() string {
	var b strings.Builder

	if m.snap.Error != "" {
		b.WriteString(bannerStyle.Render("! " + m.snap.Error + "   (x: dismiss)"))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}

	if p := m.snap.Profile; p != nil {
		fmt.Fprintf(&b, "%s │ status: %s", p.Name, statusBadge(p.CurrentStatus))
		if stage := p.Stage(); stage != "" {
			fmt.Fprintf(&b, " │ stage: %s", stage)
		}
		fmt.Fprintf(&b, " │ last verified: %s\n", timeOrDash(p.LastVerification))
	}
	if m.busy {
		b.WriteString(helpStyle.Render("working..."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *dashboardModel) viewTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if dashboardTab(i) == m.tab {
			parts[i] = selectedStyle.Render(" " + name + " ")
		} else {
			parts[i] = " " + name + " "
		}
	}
	return strings.Join(parts, "│")
}

func (m *dashboardModel) viewOverview() string {
	p := m.snap.Profile
	if p == nil {
		return "No profile"
	}

	var b strings.Builder
	now := m.now()

	var active, pending, expired int
	for _, c := range m.snap.Contacts {
		switch {
		case c.IsExpired(now):
			expired++
		case c.IsActive():
			active++
		case c.Status == models.ContactPendingInvitation:
			pending++
		}
	}
	fmt.Fprintf(&b, "Trusted contacts: %d active, %d pending, %d expired\n", active, pending, expired)

	byStatus := map[models.DeliveryStatus]int{}
	for _, n := range m.snap.Notifications {
		byStatus[n.DeliveryStatus]++
	}
	fmt.Fprintf(&b, "Notifications: %d (pending %d, sent %d, delivered %d, read %d)\n",
		len(m.snap.Notifications), byStatus[models.DeliveryPending], byStatus[models.DeliverySent],
		byStatus[models.DeliveryDelivered], byStatus[models.DeliveryRead])

	if r := p.ReviewRequestDetails; r != nil {
		b.WriteString("\nSecurity review\n")
		fmt.Fprintf(&b, "  source:     %s\n", r.Source)
		fmt.Fprintf(&b, "  reported by: %s %s\n", valueOrDash(r.ReportingContactName), relationship(r.ReportingContactRelationship))
		fmt.Fprintf(&b, "  platforms:  %s\n", valueOrDash(strings.Join(r.ReportedPlatforms, ", ")))
		fmt.Fprintf(&b, "  details:    %s\n", valueOrDash(fitText(r.Description, 60)))
		fmt.Fprintf(&b, "  identity:   %s\n", verifiedText(r.IdentityVerified))
	}

	if d := p.BreachTriggerDetails; d != nil {
		b.WriteString("\nBreach\n")
		fmt.Fprintf(&b, "  cause:      %s\n", d.Cause)
		fmt.Fprintf(&b, "  reported by: %s\n", valueOrDash(d.ReporterName))
		fmt.Fprintf(&b, "  platforms:  %s\n", valueOrDash(strings.Join(d.AffectedPlatforms, ", ")))
		fmt.Fprintf(&b, "  since:      %s\n", d.Timestamp.Local().Format(time.DateTime))
	}

	if m.tally != nil && p.CurrentStatus == models.StatusRecovering {
		t := m.tally
		fmt.Fprintf(&b, "\nLast vote: %d approved, %d denied, %d abstained of %d (needed %d)\n",
			t.Approved, t.Denied, t.Abstained, t.Voters, t.Threshold)
	}

	if m.composed != "" {
		b.WriteString("\nComposed recovery message\n")
		for _, line := range strings.Split(m.composed, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

func (m *dashboardModel) viewContacts() string {
	if len(m.snap.Contacts) == 0 {
		return "No trusted contacts yet. Press n to invite one."
	}

	now := m.now()
	var b strings.Builder
	fmt.Fprintf(&b, "  %-20s │ %-24s │ %-12s │ %-18s │ %s\n", "Name", "Contact", "Relationship", "Status", "Vote")
	for i, c := range m.snap.Contacts {
		status := string(c.Status)
		if c.IsExpired(now) {
			status = "expired"
		}
		row := fmt.Sprintf("%-20s │ %-24s │ %-12s │ %-18s │ %s",
			fitText(c.Name, 20), fitText(c.ContactMethod, 24), fitText(c.Relationship, 12), status, valueOrDash(string(c.RecoveryVoteStatus)))
		if i == m.contactIdx {
			b.WriteString("> " + selectedStyle.Render(row) + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}
	return b.String()
}

func (m *dashboardModel) viewNotifications() string {
	if len(m.snap.Notifications) == 0 {
		return "No notifications sent."
	}

	names := make(map[string]string, len(m.snap.Contacts))
	for _, c := range m.snap.Contacts {
		names[c.ContactID] = c.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-18s │ %-17s │ %-9s │ %s\n", "To", "Type", "Delivery", "Sent")
	for i, n := range m.snap.Notifications {
		to := names[n.ContactID]
		if to == "" {
			to = n.ContactID
		}
		row := fmt.Sprintf("%-18s │ %-17s │ %-9s │ %s",
			fitText(to, 18), n.NotificationType, n.DeliveryStatus, n.SentAt.Local().Format(time.DateTime))
		if i == m.noteIdx {
			b.WriteString("> " + selectedStyle.Render(row) + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}

	if m.noteIdx < len(m.snap.Notifications) {
		b.WriteString("\n")
		b.WriteString(fitText(m.snap.Notifications[m.noteIdx].MessageContent, 200))
	}
	return b.String()
}

func (m *dashboardModel) viewActivity() string {
	log := m.snap.ActivityLog
	if len(log) == 0 {
		return "Nothing has happened yet."
	}

	end := min(m.activityTop+activityPageSize, len(log))
	var b strings.Builder
	for _, e := range log[m.activityTop:end] {
		fmt.Fprintf(&b, "%s  %-46s %s\n", e.Timestamp.Local().Format(time.DateTime), e.EventType, helpStyle.Render(string(e.SystemSource)))
	}
	fmt.Fprintf(&b, "\n%d-%d of %d", m.activityTop+1, end, len(log))
	return b.String()
}

func (m *dashboardModel) hotKeys() string {
	common := "tab: view │ x: dismiss error │ ctrl+r: reset │ q: quit"

	switch m.tab {
	case tabContacts:
		return "n: invite │ enter: accept │ s: resend │ e: edit │ f: flag │ ctrl+d: remove │ E: check expiry │ " + common
	case tabNotifications:
		return "↑/↓: select │ enter: mark read │ " + common
	case tabActivity:
		return "↑/↓: scroll │ " + common
	}

	if m.snap.Profile == nil {
		return common
	}

	var actions string
	switch m.snap.Profile.CurrentStatus {
	case models.StatusSafe, models.StatusRecovered:
		actions = "i: verify │ s: system check │ z: security step │ p: self report │ u: report │ b: breach"
	case models.StatusUnderReview:
		actions = "i: identity ok │ I: identity failed │ c: confirm compromise │ d: false alarm │ D: false alarm + notify"
	case models.StatusCompromised:
		actions = "a: alert contacts │ m: extra alert │ g: start recovery │ z: security step"
	case models.StatusRecovering:
		actions = "w: view │ o: compose │ R: send requests │ t: votes │ F: complete │ a: alert │ m: extra alert"
	}
	return actions + "\n  " + common
}

func relationship(r string) string {
	if r == "" {
		return ""
	}
	return "(" + r + ")"
}

func verifiedText(ok bool) string {
	if ok {
		return "verified"
	}
	return "not verified"
}
