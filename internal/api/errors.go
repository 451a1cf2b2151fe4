// Package api provides the HTTP client for the Jobly backend.
package api

import (
	"encoding/json"
	"errors"
	"strings"
)

// Error is the only error shape api callers observe. Messages holds one or
// more human-readable strings taken from the server's error envelope, or a
// single generic string when the failure happened below the HTTP layer.
type Error struct {
	Messages   []string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// errorEnvelope mirrors the backend's error response convention:
// {"error": {"message": <string or array of strings>, "status": <int>}}.
type errorEnvelope struct {
	Error struct {
		Message json.RawMessage `json:"message"`
		Status  int             `json:"status"`
	} `json:"error"`
}

// normalizeMessages converts the duck-typed message field into a canonical
// slice of strings: a bare string becomes a one-element slice, an array
// passes through unchanged.
func normalizeMessages(raw json.RawMessage, fallback string) []string {
	if len(raw) > 0 {
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			return []string{single}
		}
		var many []string
		if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
			return many
		}
	}
	return []string{fallback}
}

// Messages extracts the normalized message sequence from err. Non-api
// errors yield their Error() string as a one-element sequence so callers
// can always render a list of alerts.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Messages
	}
	return []string{err.Error()}
}
