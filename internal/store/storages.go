package store

import "github.com/MKhiriev/go-event-planner/internal/logger"

// Storages aggregates every repository backed by one database connection.
type Storages struct {
	UserRepository     UserRepository
	EventRepository    EventRepository
	ReminderRepository ReminderRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		EventRepository:    NewEventRepository(db, log),
		ReminderRepository: NewReminderRepository(db, log),
	}
}
