package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-event-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts. Usernames are unique.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the user including its password hash.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns the user without its password hash.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// EventRepository persists events. Every read is scoped by owner.
type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	// MarkReminderSent flips reminder_sent to true if it was false and
	// reports whether this call did the flip.
	MarkReminderSent(ctx context.Context, eventID int64) (bool, error)
}

// ReminderRepository is the durable queue of armed reminders.
type ReminderRepository interface {
	UpsertReminder(ctx context.Context, reminder models.Reminder) error
	DeleteReminder(ctx context.Context, eventID int64) error
	ListDueReminders(ctx context.Context, now time.Time, limit uint64) ([]models.DueReminder, error)
}

// ErrorClassificator interprets driver errors of one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
