package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/internal/utils"
	"github.com/MKhiriev/go-event-planner/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService keeps cfg read-only after construction, so one value serves
// every request.
type authService struct {
	users  store.UserRepository
	cfg    config.App
	logger *logger.Logger
}

func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{users: users, cfg: cfg, logger: logger}
}

// RegisterUser fails with ErrValidation for a blank username, an empty
// password or one longer than bcrypt accepts, and with a wrapped
// store.ErrLoginAlreadyExists for a taken username.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(user.Username) == "" || user.Password == "" {
		log.Debug().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	hash, err := utils.HashPassword(user.Password, a.cfg.PasswordHashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, utils.MaxPasswordBytes)
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := a.users.CreateUser(ctx, models.User{
		Username:     user.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")
	return registeredUser.Public(), nil
}

// Login answers ErrInvalidCredentials for an unknown username and for a
// wrong password alike. The unknown-user path still pays for one bcrypt
// comparison.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.users.FindUserByUsername(ctx, user.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.CheckDummyPassword(user.Password, a.cfg.PasswordHashCost)
		log.Debug().Str("username", user.Username).Msg("login for unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, user.Password) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser.Public(), nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, user.UserID, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken reports ErrExpiredToken only for a token that is otherwise
// valid. Anything else wrong with it is ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrExpiredToken
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// GetUser loads a user by id without credentials.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Public(), nil
}
