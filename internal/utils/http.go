package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-event-planner/models"
)

const contentTypeJSON = "application/json"

// WriteJSON encodes payload before touching the response, so a marshal
// failure still produces a clean 500 instead of a half-written body.
func WriteJSON(w http.ResponseWriter, payload any, statusCode int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding %T response: %w", payload, err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError sends the {"error": message} envelope every failed call returns.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
