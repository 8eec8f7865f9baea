package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func newErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// respondError sends the standard error body
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, newErrorResponse(status, message))
}

// WriteError sends the standard error body; used by middleware outside this package
func WriteError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// mapServiceError picks the status for an error by its domain category
func mapServiceError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError converts a service error into the error body. Server
// errors are logged with their detail and answered with a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := mapServiceError(err)
	log := logger.FromContext(r.Context())

	if status == http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
		respondError(w, status, ErrMsgGenericServerError)
		return
	}
	log.Debug(LogMsgServiceError, "op", op, "error", err, "status", status)
	respondError(w, status, err.Error())
}

// WriteServiceError is respondServiceError for middleware outside this package
func WriteServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	respondServiceError(w, r, op, err)
}
