// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-event-planner/models"
)

func TestWithUser_StoresIDAndPublicUser(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{
		UserID:       7,
		Username:     "alice",
		Password:     "plain",
		PasswordHash: "$2a$10$hash",
	})

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 7 {
		t.Fatalf("expected userID=7, got %d (ok=%v)", userID, ok)
	}

	user, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user in context")
	}
	if user.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", user.Username)
	}
	if user.PasswordHash != "" || user.Password != "" {
		t.Error("expected credentials to be stripped from context user")
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())
	if ok || userID != 0 {
		t.Fatalf("expected (0, false), got (%d, %v)", userID, ok)
	}
}

func TestGetUserFromContext_ForeignKeyIgnored(t *testing.T) {
	ctx := context.WithValue(context.Background(), "user", models.User{UserID: 1})

	if _, ok := GetUserFromContext(ctx); ok {
		t.Fatal("a plain string key must not be read as the auth user")
	}
}
