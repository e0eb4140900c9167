package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-event-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	ListEvents(ctx context.Context, ownerID int64, query models.ListEventsQuery) ([]models.Event, error)
}

// ReminderService arms, disarms and fires event reminders.
type ReminderService interface {
	// Schedule queues the reminder of event and reports whether it was armed.
	// Events without a reminder, or whose reminder time is not in the
	// future, are skipped.
	Schedule(ctx context.Context, event models.Event) (bool, error)
	Cancel(ctx context.Context, eventID int64) error
	// FireDue delivers every reminder due at now and returns how many fired.
	FireDue(ctx context.Context, now time.Time) (int, error)
}

// Notifier delivers a due reminder to its owner.
type Notifier interface {
	Notify(ctx context.Context, reminder models.DueReminder) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
