package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/reclaim/internal/adapter"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/internal/tui"
)

type App struct {
	api    adapter.ServerAdapter
	ui     UI
	logger *logger.Logger
}

func NewApp(api adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if api == nil || ui == nil {
		return nil, errors.New("client: adapter and ui are required")
	}
	return &App{api: api, ui: ui, logger: logger}, nil
}

// Run fails fast when the server is unreachable. Quitting the UI is a clean
// exit.
func (a *App) Run(ctx context.Context) error {
	version, err := a.api.Version(ctx)
	if err != nil {
		return fmt.Errorf("lifecycle server is not reachable: %w", err)
	}
	a.logger.Info().Str("server_version", version).Msg("connected to lifecycle server")

	if err = a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}
