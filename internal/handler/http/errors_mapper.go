package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/service"
	"github.com/MKhiriev/go-event-planner/internal/store"
	"github.com/MKhiriev/go-event-planner/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrMissingToken:    http.StatusUnauthorized,
	ErrTooManyRequests: http.StatusTooManyRequests,

	service.ErrValidation:         http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrExpiredToken:       http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusBadRequest,
}

// errorMessages overrides err.Error() as the client-facing message.
var errorMessages = map[error]string{
	service.ErrInvalidCredentials: "Invalid credentials",
	store.ErrLoginAlreadyExists:   "Username already exists",
	ErrTooManyRequests:           "Too many requests",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage returns the text sent to the client for err. Errors without
// a mapping never leak their detail.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	for target, message := range errorMessages {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

// writeError maps err to a status code and writes the {"error"} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, publicMessage(err, status), status)
}
