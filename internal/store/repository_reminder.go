package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/models"
	sq "github.com/Masterminds/squirrel"
)

const remindersTable = "reminders"

type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertReminder arms the reminder for an event, replacing any fire time
// already queued for it.
func (r *reminderRepository) UpsertReminder(ctx context.Context, reminder models.Reminder) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(remindersTable).
		Columns("event_id", "fire_at").
		Values(reminder.EventID, reminder.FireAt.UTC()).
		Suffix("ON CONFLICT (event_id) DO UPDATE SET fire_at = EXCLUDED.fire_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*reminderRepository.UpsertReminder").Int64("event_id", reminder.EventID).Msg("error queueing reminder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteReminder removes the queue entry of an event. Missing entries are not an error.
func (r *reminderRepository) DeleteReminder(ctx context.Context, eventID int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.rebind(deleteReminder), eventID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.DeleteReminder").Int64("event_id", eventID).Msg("error deleting reminder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ListDueReminders returns up to limit entries with fire_at <= now, oldest
// first, joined with their events.
func (r *reminderRepository) ListDueReminders(ctx context.Context, now time.Time, limit uint64) ([]models.DueReminder, error) {
	log := logger.FromContext(ctx)

	columns := []string{"r.event_id", "r.fire_at", "r.created_at"}
	for _, c := range eventColumns {
		columns = append(columns, "e."+c)
	}

	builder := r.db.builder().
		Select(columns...).
		From(remindersTable + " r").
		Join(models.Event{}.TableName() + " e ON e.id = r.event_id").
		Where(sq.LtOrEq{"r.fire_at": now.UTC()}).
		OrderBy("r.fire_at ASC", "r.event_id ASC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListDueReminders").Msg("error selecting due reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	due := make([]models.DueReminder, 0)
	for rows.Next() {
		var (
			item     models.DueReminder
			category string
		)
		err = rows.Scan(
			&item.EventID, &item.FireAt, &item.CreatedAt,
			&item.Event.ID, &item.Event.OwnerID, &item.Event.Name, &item.Event.Description,
			&item.Event.Date, &category, &item.Event.ReminderMinutesBefore,
			&item.Event.ReminderSent, &item.Event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.Event.Category = models.Category(category)
		due = append(due, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return due, nil
}
