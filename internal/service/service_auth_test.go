package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/mock"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/internal/utils"
	"github.com/MKhiriev/go-event-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "planner-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAppConfig(), logger.Nop()).(*authService)
	return svc, repo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Empty(t, u.Password, "plain-text password must not reach the store")
			assert.NotEqual(t, "s3cret", u.PasswordHash)
			assert.True(t, utils.CheckPassword(u.PasswordHash, "s3cret"))

			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "s3cret"})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{"empty username", models.User{Password: "pw"}},
		{"blank username", models.User{Username: "   ", Password: "pw"}},
		{"empty password", models.User{Username: "alice"}},
		{"password over 72 bytes", models.User{Username: "alice", Password: strings.Repeat("x", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthSvc(t)

			_, err := svc.RegisterUser(context.Background(), tt.user)

			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 4, Username: "alice", PasswordHash: hash}, nil)

	user, err := svc.Login(ctx, models.User{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), user.UserID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 4, Username: "alice", PasswordHash: hash}, nil)
	repo.EXPECT().FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, wrongPassErr := svc.Login(ctx, models.User{Username: "alice", Password: "nope"})
	_, unknownErr := svc.Login(ctx, models.User{Username: "ghost", Password: "s3cret"})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, models.User{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "planner-test", parsed.Issuer)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	svc.cfg.TokenDuration = -time.Minute
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	other := NewAuthService(nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "planner-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{UserID: 1})
	require.NoError(t, err)

	for _, raw := range []string{"garbage", "", foreign.SignedString} {
		_, err = svc.ParseToken(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}
}

func TestAuthService_CreateToken_MissingKey(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	svc.cfg.TokenSignKey = ""

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestAuthService_GetUser(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(3)).Return(models.User{UserID: 3, Username: "bob"}, nil)
	repo.EXPECT().FindUserByID(ctx, int64(9)).Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.GetUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, err = svc.GetUser(ctx, 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
