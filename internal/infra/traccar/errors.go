package traccar

import (
	"fmt"
	"net/http"
	"strings"

	"trackio/internal/domain/service"
)

const maxMessageLength = 500

// APIError is a non-2xx response from the tracking service.
type APIError struct {
	Method   string
	Endpoint string
	Status   int
	Message  string
	Data     any
	RawBody  string

	remote      string
	unknownUser bool
}

func newAPIError(method, endpoint string, status int, data any, raw []byte) *APIError {
	remote := remoteMessage(data, raw)
	canned := cannedMessage(status)

	message := canned
	switch {
	case status == http.StatusUnauthorized && remote != "" && remote != canned:
		message = canned + ": " + remote
	case status != http.StatusUnauthorized && remote != "":
		message = remote
	}

	return &APIError{
		Method:   method,
		Endpoint: endpoint,
		Status:   status,
		Message:  message,
		Data:     data,
		RawBody:  string(raw),
		remote:   remote,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("traccar %s %s returned %d: %s", e.Method, e.Endpoint, e.Status, e.Message)
}

// StatusCode returns the HTTP status of the response.
func (e *APIError) StatusCode() int {
	return e.Status
}

// RemoteMessage returns the message extracted from the response body, if any.
func (e *APIError) RemoteMessage() string {
	return e.remote
}

// Is maps the status onto the tracking failure taxonomy.
func (e *APIError) Is(target error) bool {
	switch target {
	case service.ErrTrackingAuthentication:
		return e.Status == http.StatusUnauthorized || e.unknownUser
	case service.ErrTrackingForbidden:
		return e.Status == http.StatusForbidden
	case service.ErrTrackingNotFound:
		return e.Status == http.StatusNotFound && !e.unknownUser
	case service.ErrTrackingValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case service.ErrTrackingTransient:
		return e.Status == http.StatusRequestTimeout ||
			e.Status == http.StatusTooManyRequests ||
			e.Status >= http.StatusInternalServerError
	}

	return false
}

// NetworkError is a failure to reach the tracking service or read its response.
type NetworkError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return "error connecting to Traccar API: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == service.ErrTrackingTransient
}

// ValidationError is a local pre-flight rejection. No request was sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "traccar: " + e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == service.ErrTrackingValidation
}

func cannedMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "unauthorized: session invalid or expired"
	case http.StatusForbidden:
		return "forbidden: insufficient permissions"
	case http.StatusNotFound:
		return "resource not found"
	}

	text := http.StatusText(status)
	if text == "" {
		text = fmt.Sprintf("status %d", status)
	}

	return "Traccar API error: " + text
}

// remoteMessage extracts a human readable message from an error body.
func remoteMessage(data any, raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "{}" {
		return ""
	}

	switch v := data.(type) {
	case string:
		return truncate(strings.TrimSpace(v), maxMessageLength)
	case map[string]any:
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := v["error"].(string); ok && msg != "" {
			return msg
		}
	}

	return truncate(trimmed, maxMessageLength)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
