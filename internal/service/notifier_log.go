package service

import (
	"context"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/models"
)

// logNotifier delivers reminders as structured log lines.
type logNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, reminder models.DueReminder) error {
	n.logger.Info().
		Int64("event_id", reminder.EventID).
		Int64("owner_id", reminder.Event.OwnerID).
		Str("event_name", reminder.Event.Name).
		Str("category", string(reminder.Event.Category)).
		Time("event_date", reminder.Event.Date).
		Time("fire_at", reminder.FireAt).
		Msgf("Reminder: %s is coming up", reminder.Event.Name)
	return nil
}
