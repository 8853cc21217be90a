package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/reclaim/models"
)

type formPurpose int

const (
	formInvite formPurpose = iota
	formEdit
	formFlag
	formReport
	formSelfReport
	formBreach
)

type formField struct {
	label       string
	placeholder string
	value       string
	limit       int
}

// fieldForm is a column of labelled single-line inputs.
type fieldForm struct {
	purpose  formPurpose
	title    string
	targetID string

	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newFieldForm(purpose formPurpose, title, targetID string, fields ...formField) *fieldForm {
	f := &fieldForm{purpose: purpose, title: title, targetID: targetID}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = field.limit
		in.Width = 40
		in.SetValue(field.value)
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func newInviteForm() *fieldForm {
	return newFieldForm(formInvite, "INVITE TRUSTED CONTACT", "",
		formField{label: "Name", placeholder: "Alice Johnson", limit: 120},
		formField{label: "Contact", placeholder: "alice@example.com or +15551234567", limit: 120},
		formField{label: "Type", placeholder: "email | phone | other", limit: 5},
		formField{label: "Relationship", placeholder: "Sister", limit: 60},
	)
}

func newEditForm(c models.Contact) *fieldForm {
	return newFieldForm(formEdit, "EDIT CONTACT", c.ContactID,
		formField{label: "Name", value: c.Name, limit: 120},
		formField{label: "Contact", value: c.ContactMethod, limit: 120},
		formField{label: "Type", value: string(c.Type), limit: 5},
		formField{label: "Relationship", value: c.Relationship, limit: 60},
	)
}

func newFlagForm(c models.Contact) *fieldForm {
	return newFieldForm(formFlag, "REPORT FROM "+strings.ToUpper(c.Name), c.ContactID,
		formField{label: "Platforms", placeholder: "email, bank", limit: 300},
		formField{label: "What happened", placeholder: "Strange messages sent from your account", limit: 2000},
	)
}

func newReportForm() *fieldForm {
	return newFieldForm(formReport, "SUSPICION REPORTED BY SOMEONE ELSE", "",
		formField{label: "Reporter", placeholder: "Carol", limit: 120},
		formField{label: "Relationship", placeholder: "Neighbour", limit: 60},
		formField{label: "Platforms", placeholder: "email, social", limit: 300},
		formField{label: "What happened", limit: 2000},
	)
}

func newSelfReportForm() *fieldForm {
	return newFieldForm(formSelfReport, "REPORT SUSPICIOUS ACTIVITY", "",
		formField{label: "Platforms", placeholder: "email, bank", limit: 300},
		formField{label: "What happened", limit: 2000},
	)
}

func newBreachForm() *fieldForm {
	return newFieldForm(formBreach, "SIMULATE BREACH DETECTION", "",
		formField{label: "Platforms", placeholder: "email", limit: 300},
		formField{label: "Reason", placeholder: "Credentials found in a public dump", limit: 500},
	)
}

// update reports whether the form was submitted or cancelled by this message.
func (f *fieldForm) update(msg tea.Msg) (submitted, cancelled bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return false, true, nil
		case key.Matches(keyMsg, keys.enter):
			return true, false, nil
		case key.Matches(keyMsg, keys.tab):
			f.move(1)
			return false, false, nil
		case key.Matches(keyMsg, keys.backtab):
			f.move(-1)
			return false, false, nil
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, false, cmd
}

func (f *fieldForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *fieldForm) value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *fieldForm) contactInput() models.ContactInput {
	typ := models.ContactType(strings.ToLower(f.value(2)))
	if typ == "" {
		typ = models.ContactTypeEmail
	}
	return models.ContactInput{
		Name:          f.value(0),
		ContactMethod: f.value(1),
		Type:          typ,
		Relationship:  f.value(3),
	}
}

func (f *fieldForm) View() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(padRight(f.labels[i], width))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: submit")
}

type messagePurpose int

const (
	messageAdditional messagePurpose = iota
	messageRecoveryRequest
	messageCompose
)

// messageForm edits free-form text. Enter inserts a newline; ctrl+s submits.
type messageForm struct {
	purpose  messagePurpose
	title    string
	optional bool
	area     textarea.Model
	errMsg   string
}

func newMessageForm(purpose messagePurpose) *messageForm {
	area := textarea.New()
	area.CharLimit = 2000
	area.SetWidth(60)
	area.SetHeight(6)
	area.Focus()

	f := &messageForm{purpose: purpose, area: area}
	switch purpose {
	case messageAdditional:
		f.title = "ADDITIONAL ALERT"
		area.Placeholder = "Please ignore any payment requests sent from my accounts."
	case messageRecoveryRequest:
		f.title = "SEND RECOVERY REQUESTS"
		f.optional = true
		area.Placeholder = "Leave empty to use the default recovery message."
	case messageCompose:
		f.title = "COMPOSE RECOVERY MESSAGE"
		f.optional = true
		area.Placeholder = "Leave empty to use the default recovery message."
	}
	f.area = area
	return f
}

func (f *messageForm) update(msg tea.Msg) (submitted, cancelled bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return false, true, nil
		case "ctrl+s":
			if !f.optional && f.text() == "" {
				f.errMsg = "Message is required"
				return false, false, nil
			}
			return true, false, nil
		}
	}

	f.area, cmd = f.area.Update(msg)
	return false, false, cmd
}

func (f *messageForm) text() string {
	return strings.TrimSpace(f.area.Value())
}

func (f *messageForm) View() string {
	out := f.area.View()
	if f.errMsg != "" {
		out += "\n\n" + errorStyle.Render(f.errMsg)
	}
	return renderPage(f.title, out, "esc: cancel │ ctrl+s: send")
}

type confirmAction int

const (
	confirmReset confirmAction = iota
	confirmRemove
)

type confirmModel struct {
	action   confirmAction
	message  string
	targetID string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\ny yes    n no")
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
