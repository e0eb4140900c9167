// Package utils holds small helpers shared by the server and the client:
// request-scoped user values, bcrypt hashing, JSON responses, the resty
// client factory, JWT handling and trace ids.
package utils

import (
	"context"

	"github.com/MKhiriev/go-event-planner/models"
)

type userCtxKey struct{}

// WithUser stores the authenticated user with credentials stripped.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user.Public())
}

func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(models.User)
	return user, ok
}

// GetUserIDFromContext is ok only on requests that passed the auth gate.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := GetUserFromContext(ctx)
	if !ok {
		return 0, false
	}
	return user.UserID, true
}
