// Package service defines interfaces for core domain collaborators.
// Concrete implementations live under internal/infra.
package service

import (
	"context"
	"time"

	"trackio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Tracking-service failure taxonomy. Client errors match these with errors.Is.
var (
	// ErrTrackingConfiguration is a fatal, non-retryable misconfiguration such as missing admin credentials.
	ErrTrackingConfiguration = errors.New("tracking service misconfigured")
	// ErrTrackingAuthentication is a 401, or an unknown user on session creation.
	ErrTrackingAuthentication = errors.New("tracking service authentication failed")
	// ErrTrackingForbidden is a 403.
	ErrTrackingForbidden = errors.New("tracking service access forbidden")
	// ErrTrackingNotFound is a 404 for a user or device.
	ErrTrackingNotFound = errors.New("tracking service resource not found")
	// ErrTrackingValidation is a rejected payload, or a local pre-flight check failure.
	ErrTrackingValidation = errors.New("tracking service request invalid")
	// ErrTrackingTransient is a connection failure, timeout, 5xx or open circuit. Safe for callers to retry.
	ErrTrackingTransient = errors.New("tracking service temporarily unavailable")
)

// TrackingError exposes the diagnostic payload of a remote failure.
type TrackingError interface {
	error
	StatusCode() int
	RemoteMessage() string
}

// TrackingSession is the result of a password login on the tracking service.
// Credential is nil when the response carried no session cookie.
type TrackingSession struct {
	User       *entity.TrackingUser
	Credential *entity.SessionCredential
}

// TrackingClient is the typed surface of the tracking-service API.
// Device and position operations reject a blank credential before any network call.
type TrackingClient interface {
	// CreateSession logs in with email and password.
	CreateSession(ctx context.Context, email, password string) (*TrackingSession, error)

	// GenerateToken requests an explicit session token using basic auth.
	GenerateToken(ctx context.Context, email, password string, expiration *time.Time) (*entity.SessionCredential, error)

	// GetSession returns the user of the current session. An empty token asks without auth.
	GetSession(ctx context.Context, token string) (*entity.TrackingUser, error)

	// CloseSession logs the credential out.
	CloseSession(ctx context.Context, credential *entity.SessionCredential) error

	// CreateUser creates a tracking user with administrator credentials.
	CreateUser(ctx context.Context, user *entity.TrackingUser, adminEmail, adminPassword string) (*entity.TrackingUser, error)

	// UpdateUser replaces a tracking user, authenticated as email/password.
	UpdateUser(ctx context.Context, id int64, user *entity.TrackingUser, email, password string) (*entity.TrackingUser, error)

	// DeleteUser removes a tracking user with administrator credentials.
	DeleteUser(ctx context.Context, id int64, adminEmail, adminPassword string) error

	// ResetPassword asks the tracking service to mail a reset link.
	ResetPassword(ctx context.Context, email string) error

	ListDevices(ctx context.Context, credential *entity.SessionCredential) ([]entity.Device, error)

	// GetDevice returns nil without error when no device matches.
	GetDevice(ctx context.Context, id int64, credential *entity.SessionCredential) (*entity.Device, error)

	CreateDevice(ctx context.Context, device *entity.Device, credential *entity.SessionCredential) (*entity.Device, error)

	UpdateDevice(ctx context.Context, id int64, device *entity.Device, credential *entity.SessionCredential) (*entity.Device, error)

	DeleteDevice(ctx context.Context, id int64, credential *entity.SessionCredential) error

	// GetPositions returns positions for the query. Without a device id the latest fix of every device is returned.
	GetPositions(ctx context.Context, credential *entity.SessionCredential, query entity.PositionQuery) ([]entity.Position, error)
}
