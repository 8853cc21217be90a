package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/internal/handler"
	"github.com/MKhiriev/reclaim/internal/lifecycle"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/internal/server"
	"github.com/MKhiriev/reclaim/internal/store"
	"github.com/MKhiriev/reclaim/internal/validators"
	"github.com/MKhiriev/reclaim/internal/workers"
	"github.com/MKhiriev/reclaim/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("reclaim-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	stateStore, err := store.NewStateStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating state store")
	}

	service := lifecycle.NewService(*cfg, stateStore, validators.NewRequestValidator(), log)
	if err = service.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("stored session unavailable, started from defaults")
	}

	handlers, err := handler.NewHandlers(service, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(
		workers.NewExpiryJob(service, cfg.Workers.ExpiryCheckInterval, log),
	)

	srv, err := server.NewServer(handlers.HTTP.Init(), bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer(ctx)
	if err = service.Close(); err != nil {
		log.Err(err).Msg("error closing session")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}
