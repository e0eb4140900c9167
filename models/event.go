// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Category is the closed set of tags an event can carry.
type Category string

const (
	CategoryMeeting     Category = "Meeting"
	CategoryBirthday    Category = "Birthday"
	CategoryAppointment Category = "Appointment"
)

// Categories lists every valid [Category] in declaration order.
var Categories = []Category{CategoryMeeting, CategoryBirthday, CategoryAppointment}

// IsValid reports whether c is one of the known categories.
// Matching is case-sensitive.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MaxReminderMinutes caps ReminderMinutesBefore at ten years.
const MaxReminderMinutes = 10 * 366 * 24 * 60

// Event is a single planned occurrence owned by exactly one user.
type Event struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// OwnerID is the user that created the event. All queries are scoped by it.
	OwnerID int64 `json:"-"`

	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Category    Category  `json:"category"`

	// ReminderMinutesBefore is how long before Date the reminder fires.
	// Nil means no reminder.
	ReminderMinutesBefore *int `json:"reminderMinutesBefore,omitempty"`

	// ReminderSent flips from false to true exactly once, when the reminder fires.
	ReminderSent bool `json:"reminderSent"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Event model.
func (e Event) TableName() string {
	return "events"
}

// ReminderAt returns the moment the reminder is due and whether the event
// has a reminder at all. An offset too large for time.Duration reports no
// reminder.
func (e Event) ReminderAt() (time.Time, bool) {
	if e.ReminderMinutesBefore == nil {
		return time.Time{}, false
	}
	if int64(*e.ReminderMinutesBefore) > math.MaxInt64/int64(time.Minute) {
		return time.Time{}, false
	}
	return e.Date.Add(-time.Duration(*e.ReminderMinutesBefore) * time.Minute), true
}

// Reminder is a queued, not yet delivered reminder for an event.
type Reminder struct {
	EventID   int64
	FireAt    time.Time
	CreatedAt time.Time
}

// SortBy selects the ordering of an event listing.
type SortBy string

const (
	SortByDate     SortBy = "date"
	SortByCategory SortBy = "category"
)

// EventFilter narrows an event listing for a single owner.
type EventFilter struct {
	OwnerID      int64
	Category     *Category
	ReminderSent *bool
	SortBy       SortBy
}

// DueReminder is a queue entry joined with the event it belongs to.
type DueReminder struct {
	Reminder
	Event Event
}
