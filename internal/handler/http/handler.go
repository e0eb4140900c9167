package http

import (
	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/service"
)

type Handler struct {
	services *service.Services

	authLimiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		authLimiter: newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		logger:      logger,
	}
}
