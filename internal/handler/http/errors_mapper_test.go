package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-event-planner/internal/service"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: name is required", service.ErrValidation), http.StatusBadRequest},
		{"duplicate username", fmt.Errorf("wrapped: %w", store.ErrLoginAlreadyExists), http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest},
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest},
		{"missing token", ErrMissingToken, http.StatusUnauthorized},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", service.ErrExpiredToken, http.StatusUnauthorized},
		{"rate limited", ErrTooManyRequests, http.StatusTooManyRequests},
		{"store failure", fmt.Errorf("x: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials", publicMessage(service.ErrInvalidCredentials, http.StatusBadRequest))
	assert.Equal(t, "Username already exists", publicMessage(store.ErrLoginAlreadyExists, http.StatusBadRequest))
	assert.Equal(t, "validation error: date is required",
		publicMessage(fmt.Errorf("%w: date is required", service.ErrValidation), http.StatusBadRequest))
	assert.Equal(t, "Internal Server Error",
		publicMessage(errors.New("pq: password authentication failed"), http.StatusInternalServerError))
}
