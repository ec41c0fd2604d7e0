package entity

import (
	"strings"

	"trackio/internal/domain/constants"
)

// CredentialSource records where a tracking session credential came from.
type CredentialSource string

const (
	CredentialSourceCookie CredentialSource = "cookie" // JSESSIONID from a Set-Cookie header.
	CredentialSourceToken  CredentialSource = "token"  // Token returned by the explicit token endpoint.
)

// SessionCredential is the opaque value required for tracking-service calls.
// Either provenance is sent back the same way, as a cookie or a bearer header.
type SessionCredential struct {
	Value  string
	Source CredentialSource
}

// NewSessionCredential returns nil for a blank value.
func NewSessionCredential(value string, source CredentialSource) *SessionCredential {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	return &SessionCredential{Value: value, Source: source}
}

// IsBlank reports whether the credential is missing or whitespace only.
func (c *SessionCredential) IsBlank() bool {
	return c == nil || strings.TrimSpace(c.Value) == ""
}

// String returns the raw value, or "" for a nil credential.
func (c *SessionCredential) String() string {
	if c == nil {
		return ""
	}

	return c.Value
}

// CookieHeader renders the credential as a Cookie header value.
func (c *SessionCredential) CookieHeader() string {
	return constants.TrackingSessionCookie + "=" + strings.TrimSpace(c.String())
}

// AuthorizationHeader renders the credential as an Authorization header value.
func (c *SessionCredential) AuthorizationHeader() string {
	return "Bearer " + strings.TrimSpace(c.String())
}
