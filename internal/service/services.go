package service

import (
	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/models"
)

type Services struct {
	AuthService     AuthService
	EventService    EventService
	ReminderService ReminderService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	reminderService := NewReminderService(
		storages.ReminderRepository,
		storages.EventRepository,
		NewLogNotifier(logger),
		cfg.Workers,
		logger,
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		EventService:    NewEventService(storages.EventRepository, reminderService, logger),
		ReminderService: reminderService,
		AppInfoService:  NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
