// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/models"
	sq "github.com/Masterminds/squirrel"
)

type eventRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEvent inserts the event and fills in id and created_at.
// Times are stored in UTC.
func (r *eventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(models.Event{}.TableName()).
		Columns("owner_id", "name", "description", "date", "category", "reminder_minutes_before", "reminder_sent").
		Values(event.OwnerID, event.Name, event.Description, event.Date.UTC(), string(event.Category), event.ReminderMinutesBefore, false).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, ErrEventNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.CreateEvent").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error inserting event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	event.Date = event.Date.UTC()
	event.ReminderSent = false
	return event, nil
}

// ListEvents returns the owner's events. Sorting by category orders by
// category and then by date; any other sort orders by date only.
func (r *eventRepository) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error selecting events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error scanning event")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (r *eventRepository) listQuery(filter models.EventFilter) sq.SelectBuilder {
	builder := r.db.builder().
		Select(eventColumns...).
		From(models.Event{}.TableName()).
		Where(sq.Eq{"owner_id": filter.OwnerID})

	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": string(*filter.Category)})
	}
	if filter.ReminderSent != nil {
		builder = builder.Where(sq.Eq{"reminder_sent": *filter.ReminderSent})
	}

	if filter.SortBy == models.SortByCategory {
		builder = builder.OrderBy("category ASC")
	}
	return builder.OrderBy("date ASC", "id ASC")
}

// MarkReminderSent is conditional on reminder_sent being false, so two
// concurrent callers cannot both flip it.
func (r *eventRepository) MarkReminderSent(ctx context.Context, eventID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, r.db.rebind(markReminderSent), true, eventID, false)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.MarkReminderSent").Int64("event_id", eventID).Msg("error updating event")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event    models.Event
		category string
	)

	err := row.Scan(
		&event.ID,
		&event.OwnerID,
		&event.Name,
		&event.Description,
		&event.Date,
		&category,
		&event.ReminderMinutesBefore,
		&event.ReminderSent,
		&event.CreatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	event.Category = models.Category(category)
	return event, nil
}
