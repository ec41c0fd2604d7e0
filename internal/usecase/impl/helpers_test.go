package impl

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"trackio/config"
	"trackio/internal/domain/service"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Traccar: &config.TraccarConfig{
			AdminEmail:    "admin@example.com",
			AdminPassword: "admin-secret",
			SessionTTL:    7 * 24 * time.Hour,
		},
		Auth: &config.AuthConfig{PasswordMinLength: 6},
	}
	cfg.Site.BaseURL = "https://app.example.com/"

	return cfg
}

func ptr[T any](v T) *T {
	return &v
}

// fakeTrackingError stands in for a tracking client error with a status and remote message.
type fakeTrackingError struct {
	status   int
	remote   string
	sentinel error
}

func (e *fakeTrackingError) Error() string         { return http.StatusText(e.status) + ": " + e.remote }
func (e *fakeTrackingError) StatusCode() int       { return e.status }
func (e *fakeTrackingError) RemoteMessage() string { return e.remote }
func (e *fakeTrackingError) Is(target error) bool  { return target == e.sentinel }

func trackingErr(status int, remote string) error {
	var sentinel error
	switch {
	case status == http.StatusUnauthorized:
		sentinel = service.ErrTrackingAuthentication
	case status == http.StatusForbidden:
		sentinel = service.ErrTrackingForbidden
	case status == http.StatusNotFound:
		sentinel = service.ErrTrackingNotFound
	case status == http.StatusBadRequest:
		sentinel = service.ErrTrackingValidation
	case status >= http.StatusInternalServerError:
		sentinel = service.ErrTrackingTransient
	}

	return &fakeTrackingError{status: status, remote: remote, sentinel: sentinel}
}
