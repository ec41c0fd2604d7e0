package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess   = "access"
	TokenTypeRefresh  = "refresh"
	TokenTypeRecovery = "recovery"
	TokenTypeSignup   = "signup"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	AccountID   uuid.UUID `json:"aid"`
	SessionID   uuid.UUID `json:"sid,omitempty"`
	Type        string    `json:"type"`
	Fingerprint string    `json:"fp,omitempty"` // Binds one-time tokens to the password hash they were issued against.
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates an access and refresh token pair bound to a session.
	GenerateTokens(accountID, sessionID uuid.UUID) (accessToken, refreshToken string, expiresAt time.Time, err error)

	// GenerateOneTimeToken creates a short-lived token of the given type.
	GenerateOneTimeToken(accountID uuid.UUID, tokenType, fingerprint string) (string, error)

	// ValidateToken checks signature, expiry and the expected token type.
	ValidateToken(tokenString, expectedType string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
