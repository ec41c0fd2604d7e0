package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdentityMapping links a profile to its tracking-service identity and current session.
// There is at most one mapping per profile.
type IdentityMapping struct {
	ID               uuid.UUID  // Surrogate key of the row.
	ProfileID        uuid.UUID  // Owning profile, unique.
	TrackingUserID   *int64     // Tracking service's own numeric user id, nil until known.
	TrackingUsername string     // Login name on the tracking service (its email).
	SessionToken     *string    // Current session credential value, nil when none was obtained.
	TokenExpiresAt   *time.Time // Local expiry of SessionToken.
	IsSynced         bool       // Whether the last synchronization succeeded.
	LastSyncAt       time.Time  // Timestamp of the last synchronization attempt that wrote the row.
	SyncError        *string    // Text of the last failed synchronization, nil after success.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasToken reports whether a non-blank session token is stored.
func (m *IdentityMapping) HasToken() bool {
	return !NewSessionCredential(derefString(m.SessionToken), CredentialSourceCookie).IsBlank()
}

// IsExpired reports whether the stored token expired before now.
// A mapping without an expiry never expires locally.
func (m *IdentityMapping) IsExpired(now time.Time) bool {
	return m.TokenExpiresAt != nil && m.TokenExpiresAt.Before(now)
}

// Credential returns the stored session credential, or nil when blank.
func (m *IdentityMapping) Credential() *SessionCredential {
	return NewSessionCredential(derefString(m.SessionToken), CredentialSourceCookie)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
