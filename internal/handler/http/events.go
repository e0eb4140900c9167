// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/utils"
	"github.com/MKhiriev/go-event-planner/models"
)

// Query parameter names accepted by GET /events.
const (
	querySortBy         = "sortBy"
	queryFilterCategory = "filterCategory"
	queryReminderStatus = "reminderStatus"
)

// createEvent handles POST /events. The owner is always the authenticated
// user; a client-supplied owner is ignored.
func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrMissingToken)
		return
	}

	var request models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	event, err := h.services.EventService.CreateEvent(ctx, request.ToEvent(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EventCreatedResponse{Message: "Event created", Event: event}, http.StatusCreated)
}

// listEvents handles GET /events for the authenticated user.
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrMissingToken)
		return
	}

	query := r.URL.Query()
	events, err := h.services.EventService.ListEvents(ctx, userID, models.ListEventsQuery{
		SortBy:         query.Get(querySortBy),
		FilterCategory: query.Get(queryFilterCategory),
		ReminderStatus: query.Get(queryReminderStatus),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	utils.WriteJSON(w, events, http.StatusOK)
}
