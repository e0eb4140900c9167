// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the event planner API.
//
// [ServerAdapter] hides the HTTP transport from the CLI. Non-2xx responses
// are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-event-planner/models"
)

// ServerAdapter defines communication with the event planner server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates a new account. It does not log in.
	Register(ctx context.Context, credentials models.CredentialsRequest) error

	// Login exchanges credentials for a token, stores it via SetToken and
	// returns it.
	Login(ctx context.Context, credentials models.CredentialsRequest) (string, error)

	CreateEvent(ctx context.Context, event models.CreateEventRequest) (models.Event, error)

	// ListEvents returns the caller's events. Empty query fields are not sent.
	ListEvents(ctx context.Context, query models.ListEventsQuery) ([]models.Event, error)

	Version(ctx context.Context) (models.VersionResponse, error)
}
