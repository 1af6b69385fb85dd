package main

import (
	"context"
	"fmt"

	"github.com/eco-conscious/backend/internal/config"
	myHTTP "github.com/eco-conscious/backend/internal/handler/http"
	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/mail"
	"github.com/eco-conscious/backend/internal/server"
	"github.com/eco-conscious/backend/internal/service"
	"github.com/eco-conscious/backend/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("eco-conscious-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.DB.ConnectTimeout)
	defer cancel()

	db, err := store.NewDB(connectCtx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	repositories := store.NewRepositories(db, log)
	mailer := mail.NewSMTPMailer(cfg.Mail, log)
	services := service.NewServices(repositories, mailer, cfg, log)
	handler := myHTTP.NewHandler(services, db, cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if err = db.Close(context.Background()); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	}
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
