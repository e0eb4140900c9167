// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/models"
)

type eventService struct {
	eventRepository store.EventRepository
	reminders       ReminderService

	logger *logger.Logger
}

func NewEventService(eventRepository store.EventRepository, reminders ReminderService, logger *logger.Logger) EventService {
	return &eventService{
		eventRepository: eventRepository,
		reminders:       reminders,
		logger:          logger,
	}
}

// CreateEvent validates and stores the event, then arms its reminder.
// A failure to arm the reminder is logged and does not fail the call.
func (s *eventService) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	if err := validateEvent(event); err != nil {
		return models.Event{}, err
	}

	created, err := s.eventRepository.CreateEvent(ctx, event)
	if err != nil {
		log.Err(err).Int64("owner_id", event.OwnerID).Msg("event creation failed")
		return models.Event{}, fmt.Errorf("event creation failed: %w", err)
	}

	armed, err := s.reminders.Schedule(ctx, created)
	if err != nil {
		log.Err(err).Int64("event_id", created.ID).Msg("reminder scheduling failed")
	} else {
		log.Debug().Int64("event_id", created.ID).Bool("reminder_armed", armed).Msg("event created")
	}

	return created, nil
}

// ListEvents returns the owner's events filtered and sorted by query.
func (s *eventService) ListEvents(ctx context.Context, ownerID int64, query models.ListEventsQuery) ([]models.Event, error) {
	filter, err := parseListQuery(ownerID, query)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepository.ListEvents(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", ownerID).Msg("event listing failed")
		return nil, fmt.Errorf("event listing failed: %w", err)
	}

	return events, nil
}

func validateEvent(event models.Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !event.Category.IsValid() {
		return fmt.Errorf("%w: category must be one of %s", ErrValidation, categoryList())
	}
	if event.ReminderMinutesBefore != nil && *event.ReminderMinutesBefore < 0 {
		return fmt.Errorf("%w: reminderMinutesBefore must not be negative", ErrValidation)
	}
	if event.ReminderMinutesBefore != nil && *event.ReminderMinutesBefore > models.MaxReminderMinutes {
		return fmt.Errorf("%w: reminderMinutesBefore must not exceed %d", ErrValidation, models.MaxReminderMinutes)
	}
	return nil
}

func parseListQuery(ownerID int64, query models.ListEventsQuery) (models.EventFilter, error) {
	filter := models.EventFilter{OwnerID: ownerID, SortBy: models.SortByDate}

	switch models.SortBy(query.SortBy) {
	case "", models.SortByDate:
	case models.SortByCategory:
		filter.SortBy = models.SortByCategory
	default:
		return models.EventFilter{}, fmt.Errorf("%w: sortBy must be date or category", ErrValidation)
	}

	if query.FilterCategory != "" {
		category := models.Category(query.FilterCategory)
		if !category.IsValid() {
			return models.EventFilter{}, fmt.Errorf("%w: filterCategory must be one of %s", ErrValidation, categoryList())
		}
		filter.Category = &category
	}

	if query.ReminderStatus != "" {
		sent, err := strconv.ParseBool(query.ReminderStatus)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("%w: reminderStatus must be true or false", ErrValidation)
		}
		filter.ReminderSent = &sent
	}

	return filter, nil
}

func categoryList() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
