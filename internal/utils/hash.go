// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned when the password exceeds MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// dummyHashes holds one dummy bcrypt hash per cost, keyed by int.
var dummyHashes sync.Map

// HashPassword computes a bcrypt hash of password with the given cost.
func HashPassword(password string, cost int) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckDummyPassword runs a bcrypt comparison against a fixed hash built at
// cost and always reports false. It keeps the unknown-user path as slow as a
// real mismatch hashed with the same cost.
func CheckDummyPassword(password string, cost int) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash(cost), []byte(password))
	return false
}

func dummyHash(cost int) []byte {
	if h, ok := dummyHashes.Load(cost); ok {
		return h.([]byte)
	}

	h, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), cost)
	if err != nil {
		h, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	}
	actual, _ := dummyHashes.LoadOrStore(cost, h)
	return actual.([]byte)
}
