// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-event-planner/internal/service"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsBody = `{"username":"alice","password":"secret"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var received models.User
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			received = u
			return models.User{UserID: 1, Username: u.Username}, nil
		},
	}

	h := newTestHandler(auth, nil)
	rec := httptest.NewRecorder()
	h.register(rec, newJSONRequest(http.MethodPost, "/register", credentialsBody))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", received.Username)
	assert.Equal(t, "secret", received.Password)

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "User registered", body.Message)
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: ErrInvalidJSON.Error(),
		},
		{
			name:        "validation error keeps detail",
			body:        credentialsBody,
			serviceErr:  fmt.Errorf("%w: password is required", service.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "validation error: password is required",
		},
		{
			name:        "duplicate username",
			body:        credentialsBody,
			serviceErr:  fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username already exists",
		},
		{
			name:        "internal error hides detail",
			body:        credentialsBody,
			serviceErr:  errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			h := newTestHandler(auth, nil)
			rec := httptest.NewRecorder()
			h.register(rec, newJSONRequest(http.MethodPost, "/register", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 7, Username: u.Username}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(7), u.UserID)
			return models.Token{SignedString: "signed.jwt.token", UserID: u.UserID}, nil
		},
	}

	h := newTestHandler(auth, nil)
	rec := httptest.NewRecorder()
	h.login(rec, newJSONRequest(http.MethodPost, "/login", credentialsBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "signed.jwt.token", body.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	createTokenCalled := false
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			createTokenCalled = true
			return models.Token{}, nil
		},
	}

	h := newTestHandler(auth, nil)
	rec := httptest.NewRecorder()
	h.login(rec, newJSONRequest(http.MethodPost, "/login", credentialsBody))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeError(t, rec))
	assert.False(t, createTokenCalled)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, nil)
	rec := httptest.NewRecorder()
	h.login(rec, newJSONRequest(http.MethodPost, "/login", "not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeError(t, rec))
}

func TestLogin_TokenCreationFailed(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 1}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(auth, nil)
	rec := httptest.NewRecorder()
	h.login(rec, newJSONRequest(http.MethodPost, "/login", credentialsBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec))
}
