package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/reclaim/models"
)

const (
	pageDashboard = "dashboard"
	pageOnboard   = "onboard"
)

// RootModel switches between pages on [NavigateTo] and forwards every other
// message to the active one. ctrl+c quits from anywhere; ctrl+v toggles the
// about box.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	showAbout bool

	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, current: pages[startPage], buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleGlobalKey consumes keys owned by the root. While the about box is
// open every key is swallowed.
func (r *RootModel) handleGlobalKey(key tea.KeyMsg) (bool, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case "ctrl+v":
		r.showAbout = !r.showAbout
		return true, nil
	case "esc":
		if r.showAbout {
			r.showAbout = false
			return true, nil
		}
	}
	return r.showAbout, nil
}

// navigate activates nav.Page. A payload is replayed to the new page instead
// of its Init command.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}
	r.current = next
	r.showAbout = false

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.showAbout:
		return renderPage("ABOUT", "Reclaim\n\n"+r.buildInfo.String(), "esc: back")
	case r.current == nil:
		return renderPage("RECLAIM", "", "")
	default:
		return r.current.View()
	}
}
