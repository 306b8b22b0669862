package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ordo-keeper/internal/adapter"
	"github.com/MKhiriev/go-ordo-keeper/internal/client"
	"github.com/MKhiriev/go-ordo-keeper/internal/config"
	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/service"
	"github.com/MKhiriev/go-ordo-keeper/internal/store"
	"github.com/MKhiriev/go-ordo-keeper/internal/tui"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("ordo-keeper")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	generator, err := adapter.NewGeminiNPCGenerator(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create npc generator")
	}

	services := service.NewClientServices(ctx, storages.DocumentStorage, generator, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, storages, log)
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
