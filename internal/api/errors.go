package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoUserID is returned by calls that require a user id derivable from the
// stored token before any request is sent.
var ErrNoUserID = errors.New("user id not found in token")

// APIError is a non-2xx response mapped to a typed error. Message carries the
// server's {"error": ...} field when present, the raw body text otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: statusCode, Message: payload.Error}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return &APIError{StatusCode: statusCode, Message: text}
	}
	return &APIError{StatusCode: statusCode, Message: fmt.Sprintf("request failed with status %d", statusCode)}
}
