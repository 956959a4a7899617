package internal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GenericServerError is the message used when the backend returns a failure
// without a usable detail payload.
const GenericServerError = "server error"

// APIError represents a non-2xx response from the backend, normalized to a
// human-readable message plus the original HTTP status.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// AuthError represents an HTTP 401 from the backend. Callers that want to
// special-case "must log in again" match on this type instead of the message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// Status always reports 401, regardless of the detail payload.
func (e *AuthError) Status() int {
	return 401
}

// errorBody is the backend's error envelope. Detail is a string, a list of
// validation errors, or an arbitrary object.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// validationItem is one entry of a validation-error list.
type validationItem struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// NormalizeError converts a raw error response body into a typed error.
// A 401 status always yields *AuthError; everything else yields *APIError
// with a best-effort message extracted from the detail field.
func NormalizeError(status int, body []byte) error {
	message := extractDetail(body)
	if status == 401 {
		return &AuthError{Message: message}
	}
	return &APIError{Message: message, Status: status}
}

func extractDetail(body []byte) string {
	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 || string(envelope.Detail) == "null" {
		return GenericServerError
	}

	// String detail is used verbatim.
	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	// Array detail is a validation-error list.
	var items []json.RawMessage
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		lines := make([]string, 0, len(items))
		for _, raw := range items {
			lines = append(lines, formatValidationItem(raw))
		}
		return strings.Join(lines, "\n")
	}

	// Anything else is surfaced as raw JSON.
	return string(envelope.Detail)
}

func formatValidationItem(raw json.RawMessage) string {
	var item validationItem
	if err := json.Unmarshal(raw, &item); err == nil && item.Msg != "" {
		return fmt.Sprintf("%s: %s", strings.Join(item.Loc, "."), item.Msg)
	}
	return string(raw)
}
