package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rfpdocs/internal/domain"
)

// ServerError is a non-2xx response from the backend. Message carries the
// structured error body when the backend supplied one.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error (status %d)", e.StatusCode)
}

// Unwrap maps well-known status codes onto domain sentinel errors so callers
// can branch with errors.Is.
func (e *ServerError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

// errorBody is the backend's structured error payload.
type errorBody struct {
	Error string `json:"error"`
}

// newServerError builds a ServerError from a non-2xx response body,
// extracting the structured message if the body parses.
func newServerError(statusCode int, body []byte) *ServerError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		return &ServerError{StatusCode: statusCode, Message: eb.Error}
	}
	return &ServerError{StatusCode: statusCode}
}

// ServerMessage returns the backend-supplied error message, if err carries one.
func ServerMessage(err error) (string, bool) {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message, true
	}
	return "", false
}

// ErrorMessage returns the backend-supplied message for err, or fallback.
// Used by the views: server messages are surfaced verbatim, everything else
// collapses to a generic banner.
func ErrorMessage(err error, fallback string) string {
	if msg, ok := ServerMessage(err); ok {
		return msg
	}
	return fallback
}
