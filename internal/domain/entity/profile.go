package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile holds application data for an account. The identity mapping hangs off its ID.
type Profile struct {
	ID        uuid.UUID // Profile identifier, owning key of the identity mapping.
	UserID    uuid.UUID // The account this profile belongs to (one profile per account).
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name, skipping empty parts.
func (p *Profile) FullName() string {
	return JoinName(p.FirstName, p.LastName)
}

// JoinName joins name parts with single spaces, skipping blanks.
func JoinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " ")
}
