package main

import (
	"context"
	"fmt"

	"github.com/homestays/reservations-api/internal/adapter"
	"github.com/homestays/reservations-api/internal/config"
	handlerhttp "github.com/homestays/reservations-api/internal/handler/http"
	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/server"
	"github.com/homestays/reservations-api/internal/service"
	"github.com/homestays/reservations-api/internal/store"
	"github.com/homestays/reservations-api/internal/validators"
	"github.com/homestays/reservations-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("reservations-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	users, err := adapter.NewUserDirectoryClient(cfg.Upstreams, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating user directory client")
	}

	listings, err := adapter.NewListingCatalogClient(cfg.Upstreams, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating listing catalog client")
	}

	repository := store.NewReservationRepository(db, log)
	services := service.NewServices(repository, users, listings, log)

	handler := handlerhttp.NewHandler(services, validators.NewReservationValidator(), db, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
