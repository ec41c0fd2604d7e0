package repository

import (
	"context"
	"time"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when an email is already registered.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrAccountSessionNotFound is returned when a session was revoked or never existed.
	ErrAccountSessionNotFound = errors.New("account session not found")
)

// AccountRecord is an account together with its password hash. Only the account provider sees the hash.
type AccountRecord struct {
	Account      entity.Account
	PasswordHash string
}

// AccountRepository defines the interface for primary account persistence.
type AccountRepository interface {
	// CreateAccount persists a new account with its password hash.
	CreateAccount(ctx context.Context, record *AccountRecord) error

	// FindByEmail retrieves an account by its normalized email.
	FindByEmail(ctx context.Context, email string) (*AccountRecord, error)

	// FindByID retrieves an account by id.
	FindByID(ctx context.Context, id uuid.UUID) (*AccountRecord, error)

	// UpdateEmail changes the login email of an account.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// AccountSessionRepository tracks server-side sessions so sign out can revoke tokens.
type AccountSessionRepository interface {
	// CreateSession records a new session.
	CreateSession(ctx context.Context, id, accountID uuid.UUID, expiresAt time.Time) error

	// FindSession returns the account owning an unexpired session.
	FindSession(ctx context.Context, id uuid.UUID, now time.Time) (uuid.UUID, error)

	// DeleteSession revokes a single session.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteByAccount revokes every session of an account.
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}
