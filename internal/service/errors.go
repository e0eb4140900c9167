package service

import "errors"

var (
	// ErrValidation wraps every rejected input. The wrapping error carries
	// the detail that is shown to the client.
	ErrValidation = errors.New("validation error")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token is expired")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrUserNotFound        = errors.New("user not found")
)
