package repository

import (
	"context"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProfileNotFound is returned when an account has no profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when an account already owns a profile.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile persistence.
type ProfileRepository interface {
	// CreateProfile persists a new profile for an account.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile owned by an account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
