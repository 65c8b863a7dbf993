// ABOUTME: Shared JSON response helpers and domain-error to status mapping

package handlers

import (
	"encoding/json"
	"net/http"

	"feedreader-api/core/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// statusFor maps domain errors to HTTP statuses. Validation problems are the
// caller's fault; fetch and parse failures are upstream problems.
func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.IsFetch(err), errors.IsParse(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
