package main

import (
	"fmt"

	"github.com/MKhiriev/go-confirm/internal/adapter"
	"github.com/MKhiriev/go-confirm/internal/config"
	"github.com/MKhiriev/go-confirm/internal/handler"
	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/internal/server"
	"github.com/MKhiriev/go-confirm/internal/service"
	"github.com/MKhiriev/go-confirm/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-confirm-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	activationAdapter, err := adapter.NewHTTPActivationAdapter(config.NewClientConfig(cfg).Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating activation adapter")
	}

	services, err := service.NewServices(activationAdapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
