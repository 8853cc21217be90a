// Package tui renders the lifecycle snapshot in the terminal and turns key
// presses into lifecycle operations. It holds no lifecycle state of its own;
// every screen is drawn from the last snapshot returned by the server.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/reclaim/internal/adapter"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	api       adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(api adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if api == nil {
		return nil, errors.New("tui: nil server adapter")
	}
	return &TUI{api: api, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. A ctrl+c exit is reported as ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageDashboard: newDashboardModel(ctx, t.api),
		pageOnboard:   newOnboardModel(ctx, t.api),
	}

	root := NewRootModel(pages, pageDashboard, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit the dashboard")
		return ErrUserQuit
	}

	return nil
}
