package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/models"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{db: db, logger: logger}
}

// CreateUser returns the row as stored, with id and created_at filled in.
// A taken username is ErrLoginAlreadyExists.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := r.scanUser(ctx, "create", createUser, []any{user.Username, user.PasswordHash}, true)
	if err != nil && r.db.isUniqueViolation(err) {
		logger.FromContext(ctx).Debug().Str("username", user.Username).Msg("username is taken")
		return models.User{}, ErrLoginAlreadyExists
	}
	return created, err
}

// FindUserByUsername includes the password hash; login needs it.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.scanUser(ctx, "find by username", findUserByUsername, []any{username}, true)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.scanUser(ctx, "find by id", findUserByID, []any{userID}, false)
}

// scanUser runs a single-row users query. Unique violations come back
// unwrapped so CreateUser can recognise them.
func (r *userRepository) scanUser(ctx context.Context, op, query string, args []any, withHash bool) (models.User, error) {
	var u models.User
	dest := []any{&u.UserID, &u.Username}
	if withHash {
		dest = append(dest, &u.PasswordHash)
	}
	dest = append(dest, &u.CreatedAt)

	err := r.db.QueryRowContext(ctx, r.db.rebind(query), args...).Scan(dest...)
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case r.db.isUniqueViolation(err):
		return models.User{}, err
	}

	logger.FromContext(ctx).Err(err).
		Str("op", op).
		Bool("retryable", r.db.isRetryable(err)).
		Msg("users query failed")
	return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
}
