package service

import (
	"context"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Primary account provider errors.
var (
	ErrAccountInvalidCredentials = errors.New("invalid email or password")
	ErrAccountAlreadyExists      = errors.New("account already exists")
	ErrAccountNotFound           = errors.New("account not found")
	ErrAccountTokenInvalid       = errors.New("account token invalid or expired")
)

// AccountProvider is the system of record for end-user authentication.
type AccountProvider interface {
	// SignUp creates an account.
	SignUp(ctx context.Context, email, password, name string) (*entity.Account, error)

	// SignInWithPassword verifies credentials and opens a session.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.AccountSession, error)

	// GetUser resolves the account behind an access token.
	GetUser(ctx context.Context, accessToken string) (*entity.Account, error)

	// UpdateUser changes email and/or password.
	UpdateUser(ctx context.Context, accountID uuid.UUID, update entity.AccountUpdate) (*entity.Account, error)

	// DeleteUser removes an account. Used to undo a partially completed signup.
	DeleteUser(ctx context.Context, accountID uuid.UUID) error

	// SignOut revokes the session behind an access token.
	SignOut(ctx context.Context, accessToken string) error

	// ResetPasswordForEmail sends a recovery link. Unknown emails succeed silently.
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error

	// VerifyOtp redeems a one-time token of the given kind for a session.
	VerifyOtp(ctx context.Context, tokenHash string, kind entity.RecoveryKind) (*entity.AccountSession, error)

	// ExchangeCodeForSession redeems a callback code for a session.
	ExchangeCodeForSession(ctx context.Context, code string) (*entity.AccountSession, error)
}
