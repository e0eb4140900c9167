package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-event-planner/internal/service"
	"github.com/MKhiriev/go-event-planner/internal/utils"
	"github.com/MKhiriev/go-event-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/events", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseErr    error
		getUserErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			header:      "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: ErrMissingToken.Error(),
		},
		{
			name:        "wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
		{
			name:        "no token after scheme",
			header:      "Bearer",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
		{
			name:        "expired token",
			header:      "Bearer expired",
			parseErr:    service.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.ErrExpiredToken.Error(),
		},
		{
			name:        "forged token",
			header:      "Bearer forged",
			parseErr:    service.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.ErrInvalidToken.Error(),
		},
		{
			name:        "user deleted after issuance",
			header:      "Bearer orphan",
			getUserErr:  service.ErrUserNotFound,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.ErrInvalidToken.Error(),
		},
		{
			name:        "user lookup failure",
			header:      "Bearer token",
			getUserErr:  errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					if tt.parseErr != nil {
						return models.Token{}, tt.parseErr
					}
					return models.Token{UserID: 42}, nil
				},
				getUserFn: func(_ context.Context, id int64) (models.User, error) {
					return models.User{}, tt.getUserErr
				},
			}

			called := false
			rr := executeAuth(newTestHandler(auth, nil), tt.header, okHandler(&called))

			assert.False(t, called, "next handler must not run")
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rr))
		})
	}
}

func TestAuth_Success_StoresUserInContext(t *testing.T) {
	var gotToken string
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			gotToken = tokenString
			return models.Token{UserID: 42}, nil
		},
		getUserFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{UserID: id, Username: "alice", PasswordHash: "$2a$hash"}, nil
		},
	}

	var (
		ctxUserID int64
		ctxUser   models.User
		idOK      bool
		userOK    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxUserID, idOK = utils.GetUserIDFromContext(r.Context())
		ctxUser, userOK = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(newTestHandler(auth, nil), "bearer my.jwt.token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "my.jwt.token", gotToken)
	require.True(t, idOK)
	require.True(t, userOK)
	assert.Equal(t, int64(42), ctxUserID)
	assert.Equal(t, "alice", ctxUser.Username)
	assert.Empty(t, ctxUser.PasswordHash, "credentials never reach the context")
}
