package http

import (
	"context"

	"github.com/homestays/reservations-api/internal/config"
	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/service"
	"github.com/homestays/reservations-api/internal/validators"
)

// Pinger is the readiness-probe view of the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	db        Pinger

	tokenSignKey string
	tokenIssuer  string
	version      string

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, db Pinger, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validator,
		db:           db,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		version:      cfg.Version,
		logger:       logger,
	}
}
