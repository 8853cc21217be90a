package handler

import (
	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/internal/handler/http"
	"github.com/MKhiriev/reclaim/internal/lifecycle"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/models"
)

// Handlers groups the transport handlers exposed by the lifecycle process.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the handlers enabled by cfg.
func NewHandlers(service *lifecycle.Service, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(service, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
