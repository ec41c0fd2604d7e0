// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the primary-provider identity used to sign in to the application.
type Account struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email     string    // Login identifier, stored lower-cased and trimmed.
	Name      string    // Display name collected at signup.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// AccountSession is an authenticated primary-provider session.
type AccountSession struct {
	ID           uuid.UUID // Server-side session record, revoked on sign out.
	AccessToken  string    // Short-lived bearer token for API calls.
	RefreshToken string    // Long-lived token bound to the session record.
	ExpiresAt    time.Time // Expiry of the access token.
	Account      *Account  // The account the session belongs to.
}

// AccountUpdate carries the optional fields of a primary account update.
type AccountUpdate struct {
	Email    *string
	Password *string
}

// RecoveryKind distinguishes the one-time token flows of the primary provider.
type RecoveryKind string

const (
	RecoveryKindRecovery RecoveryKind = "recovery" // Password recovery link.
	RecoveryKindSignup   RecoveryKind = "signup"   // Email confirmation link.
)
