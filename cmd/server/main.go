package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/handler"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/server"
	"github.com/MKhiriev/go-event-planner/internal/service"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/internal/workers"
	"github.com/MKhiriev/go-event-planner/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo.Resolved())

	log := logger.NewLogger("event-planner-server")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(store.NewStorages(db, log), cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// returns after the HTTP server and the workers have stopped, so the
	// deferred Close runs last
	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", info.Version, info.Date, info.Commit)
}
