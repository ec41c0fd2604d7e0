// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for identity mapping persistence.
var (
	// ErrIdentityMappingNotFound is returned when a profile has no tracking mapping.
	ErrIdentityMappingNotFound = errors.New("identity mapping not found")
)

// IdentityMappingRepository defines the access pattern for the profile to tracking identity mapping.
// Rows are keyed by profile id and never deleted.
type IdentityMappingRepository interface {
	// FindByProfileID retrieves the mapping owned by a profile.
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.IdentityMapping, error)

	// Upsert inserts the mapping or, when a row for the same profile exists, overwrites its
	// session fields in a single atomic statement. TrackingUserID and TrackingUsername are only
	// overwritten when set on the input. The stored row is returned.
	Upsert(ctx context.Context, mapping *entity.IdentityMapping) (*entity.IdentityMapping, error)

	// RecordSyncError stores the failure text of a synchronization attempt and clears is_synced.
	RecordSyncError(ctx context.Context, profileID uuid.UUID, message string) error
}
