package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/models"
)

type reminderService struct {
	reminderRepository store.ReminderRepository
	eventRepository    store.EventRepository
	notifier           Notifier

	batchSize uint64
	now       func() time.Time

	logger *logger.Logger
}

func NewReminderService(
	reminderRepository store.ReminderRepository,
	eventRepository store.EventRepository,
	notifier Notifier,
	cfg config.Workers,
	logger *logger.Logger,
) ReminderService {
	batchSize := cfg.ReminderBatchSize
	if batchSize <= 0 {
		batchSize = config.DefaultReminderBatchSize
	}

	return &reminderService{
		reminderRepository: reminderRepository,
		eventRepository:    eventRepository,
		notifier:           notifier,
		batchSize:          uint64(batchSize),
		now:                time.Now,
		logger:             logger,
	}
}

// Schedule arms the reminder only when its fire time is strictly in the
// future. A reminder whose time has already passed is never queued, so it
// never fires.
func (s *reminderService) Schedule(ctx context.Context, event models.Event) (bool, error) {
	log := logger.FromContext(ctx)

	fireAt, ok := event.ReminderAt()
	if !ok {
		return false, nil
	}

	if !fireAt.After(s.now()) {
		log.Debug().Int64("event_id", event.ID).Time("fire_at", fireAt).Msg("reminder time already passed, not scheduled")
		return false, nil
	}

	if err := s.reminderRepository.UpsertReminder(ctx, models.Reminder{EventID: event.ID, FireAt: fireAt}); err != nil {
		return false, fmt.Errorf("error queueing reminder: %w", err)
	}

	log.Debug().Int64("event_id", event.ID).Time("fire_at", fireAt).Msg("reminder scheduled")
	return true, nil
}

func (s *reminderService) Cancel(ctx context.Context, eventID int64) error {
	if err := s.reminderRepository.DeleteReminder(ctx, eventID); err != nil {
		return fmt.Errorf("error cancelling reminder: %w", err)
	}
	return nil
}

// FireDue notifies, marks and dequeues every reminder due at now.
// A failing entry is logged and left in the queue for the next call.
func (s *reminderService) FireDue(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.reminderRepository.ListDueReminders(ctx, now, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("error loading due reminders: %w", err)
	}

	fired := 0
	for _, reminder := range due {
		if ctx.Err() != nil {
			return fired, ctx.Err()
		}
		if s.fire(ctx, reminder) {
			fired++
		}
	}

	if fired > 0 {
		log.Info().Int("fired", fired).Int("due", len(due)).Msg("reminders fired")
	}
	return fired, nil
}

func (s *reminderService) fire(ctx context.Context, reminder models.DueReminder) bool {
	log := logger.FromContext(ctx).With().Int64("event_id", reminder.EventID).Logger()

	if reminder.Event.ReminderSent {
		s.dequeue(ctx, reminder.EventID)
		return false
	}

	if err := s.notifier.Notify(ctx, reminder); err != nil {
		log.Error().Err(err).Msg("reminder notification failed")
		return false
	}

	flipped, err := s.eventRepository.MarkReminderSent(ctx, reminder.EventID)
	if err != nil {
		log.Error().Err(err).Msg("marking reminder as sent failed")
		return false
	}

	s.dequeue(ctx, reminder.EventID)
	return flipped
}

func (s *reminderService) dequeue(ctx context.Context, eventID int64) {
	if err := s.reminderRepository.DeleteReminder(ctx, eventID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("event_id", eventID).Msg("removing fired reminder failed")
	}
}
