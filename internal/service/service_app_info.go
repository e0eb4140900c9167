package service

import (
	"context"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports the configured version, falling back to the
// version linked into the binary.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	resolved := buildInfo.Resolved()
	if cfg.Version != "" {
		resolved.Version = cfg.Version
	}

	return &appInfoService{
		info: models.VersionResponse{
			Version: resolved.Version,
			Date:    resolved.Date,
			Commit:  resolved.Commit,
		},
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.info
}
