package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/reclaim/internal/adapter"
	"github.com/MKhiriev/reclaim/models"
)

const defaultAuthMethod = "passkey"

// onboardModel creates the session profile when none exists.
type onboardModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newOnboardModel(ctx context.Context, api adapter.ServerAdapter) *onboardModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 120
	name.Width = 40
	name.Focus()

	method := textinput.New()
	method.Placeholder = defaultAuthMethod
	method.CharLimit = 40
	method.Width = 40

	return &onboardModel{
		ctx:    ctx,
		api:    api,
		inputs: []textinput.Model{name, method},
	}
}

func (m *onboardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *onboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(onboardedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			req := m.request()
			if req.Name == "" {
				m.errMsg = "Name is required"
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdOnboard(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *onboardModel) request() models.OnboardRequest {
	method := strings.TrimSpace(m.inputs[1].Value())
	if method == "" {
		method = defaultAuthMethod
	}
	return models.OnboardRequest{
		Name:       strings.TrimSpace(m.inputs[0].Value()),
		AuthMethod: method,
	}
}

func (m *onboardModel) cmdOnboard(req models.OnboardRequest) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		profile, err := api.Onboard(ctx, req)
		return onboardedMsg{profile: profile, err: err}
	}
}

func (m *onboardModel) View() string {
	var b strings.Builder

	b.WriteString("No profile yet. Create one to start protecting your accounts.\n\n")
	b.WriteString("Name        │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Auth method │ [" + m.inputs[1].View() + "]\n")

	switch {
	case m.submitting:
		b.WriteString("\nCreating profile...")
	case m.errMsg != "":
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage("WELCOME TO RECLAIM", b.String(), "tab: next field │ enter: create")
}
