package http

import (
	"context"

	"github.com/eco-conscious/backend/internal/config"
	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/service"
	"github.com/eco-conscious/backend/internal/validators"
)

// DatabasePinger reports whether the backing document store is reachable.
// Satisfied by *store.DB; the health endpoint is its only consumer.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	db        DatabasePinger

	serverCfg config.Server
	version   string

	logger *logger.Logger
}

func NewHandler(services *service.Services, db DatabasePinger, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		db:        db,
		serverCfg: cfg.Server,
		version:   cfg.App.Version,
		logger:    logger,
	}
}
