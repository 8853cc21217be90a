package http

import (
	"github.com/MKhiriev/reclaim/internal/lifecycle"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/models"
)

type Handler struct {
	service   *lifecycle.Service
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(service *lifecycle.Service, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		service:   service,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
