// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingToken is returned by the auth middleware when the incoming
	// request does not include an "Authorization" header at all.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	ErrTooManyRequests = errors.New("too many requests")
)
