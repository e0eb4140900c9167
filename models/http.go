package models

import "time"

// CredentialsRequest is the body of POST /register and POST /login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	Name                  string    `json:"name"`
	Description           *string   `json:"description,omitempty"`
	Date                  time.Time `json:"date"`
	Category              Category  `json:"category"`
	ReminderMinutesBefore *int      `json:"reminderMinutesBefore,omitempty"`
}

// ToEvent builds an [Event] owned by ownerID from the request.
func (r CreateEventRequest) ToEvent(ownerID int64) Event {
	return Event{
		OwnerID:               ownerID,
		Name:                  r.Name,
		Description:           r.Description,
		Date:                  r.Date,
		Category:              r.Category,
		ReminderMinutesBefore: r.ReminderMinutesBefore,
	}
}

// ListEventsQuery holds the raw query parameters of GET /events.
// Values are validated by the event service.
type ListEventsQuery struct {
	SortBy         string
	FilterCategory string
	ReminderStatus string
}
