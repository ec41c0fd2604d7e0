// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterTrackingInput defines the data required to create a tracking identity.
// ProfileID is optional. When set, the resulting mapping is persisted.
type RegisterTrackingInput struct {
	ProfileID uuid.UUID
	Name      string `validate:"required"`
	FirstName string
	LastName  string
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

// RegisterTrackingOutput is the created tracking user and, when a session could be opened, its credential.
type RegisterTrackingOutput struct {
	TrackingUser *entity.TrackingUser
	Credential   *entity.SessionCredential
	ExpiresAt    *time.Time
}

// RefreshSessionOutput is the fresh credential stored for a profile.
type RefreshSessionOutput struct {
	Credential *entity.SessionCredential
	ExpiresAt  time.Time
}

// TrackingSessionUsecase keeps the tracking identity and session of each profile in sync.
type TrackingSessionUsecase interface {
	// RegisterTrackingIdentity creates the tracking user and tries to open a first session.
	RegisterTrackingIdentity(ctx context.Context, input RegisterTrackingInput) (*RegisterTrackingOutput, error)

	// RefreshSession logs in to the tracking service and stores the credential for the profile.
	RefreshSession(ctx context.Context, email, password string, profileID uuid.UUID) (*RefreshSessionOutput, error)

	// ResolveCredential returns the stored, unexpired credential of a profile.
	ResolveCredential(ctx context.Context, profileID uuid.UUID) (*entity.SessionCredential, error)
}
