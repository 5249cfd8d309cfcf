package main

import (
	"fmt"

	"github.com/MKhiriev/go-confirm/internal/adapter"
	"github.com/MKhiriev/go-confirm/internal/client"
	"github.com/MKhiriev/go-confirm/internal/config"
	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/internal/service"
	"github.com/MKhiriev/go-confirm/internal/tui"
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

	log := logger.NewClientLogger("go-confirm-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	appCfg := config.App{Version: cfg.Version}
	if appCfg.Version == "" {
		appCfg.Version = buildInfo.BuildVersion()
	}

	activationAdapter, err := adapter.NewHTTPActivationAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating activation adapter")
	}

	services, err := service.NewServices(activationAdapter, appCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
