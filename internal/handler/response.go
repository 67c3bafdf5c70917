package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same shape:
//   {"error": "HF API error: Model is currently loading"}
//
// The message is the one descriptive sentence the client shows the user, so
// the client can surface it without interpreting it.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/omen/internal/apperror"
)

// msgInterpretFailed is sent when a failure carries no message of its own.
const msgInterpretFailed = "Failed to interpret the omen."

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and status must be set BEFORE writing the body. Once Encode writes,
// the headers are sent and later changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to an HTTP status and sends it.
//
// ERROR MAPPING:
//
//	apperror.ErrValidation → 400
//	anything else          → 500
//
// Transport, upstream and extraction failures all mean the backend could not
// produce an interpretation, so they share 500. The AppError message is sent
// as-is; errors without one get the generic message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, apperror.ErrValidation) {
		status = http.StatusBadRequest
	}

	msg := msgInterpretFailed
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}

	writeJSON(w, status, ErrorResponse{Error: msg})
}
