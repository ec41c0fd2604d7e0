package impl

import (
	"time"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
)

// newIdentityMapping builds the row stored after a successful synchronization.
// The username falls back to the login email when the tracking service did not return one.
func newIdentityMapping(
	profileID uuid.UUID,
	user *entity.TrackingUser,
	loginEmail string,
	credential *entity.SessionCredential,
	expiresAt *time.Time,
	now time.Time,
) *entity.IdentityMapping {
	mapping := &entity.IdentityMapping{
		ProfileID:        profileID,
		TrackingUsername: loginEmail,
		IsSynced:         true,
		LastSyncAt:       now,
	}

	if user != nil {
		if user.ID != 0 {
			id := user.ID
			mapping.TrackingUserID = &id
		}
		if user.Email != "" {
			mapping.TrackingUsername = user.Email
		}
	}

	if !credential.IsBlank() {
		token := credential.Value
		mapping.SessionToken = &token
		mapping.TokenExpiresAt = expiresAt
	}

	return mapping
}
