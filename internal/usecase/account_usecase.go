package usecase

import (
	"context"
	"time"

	"trackio/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	FirstName string `validate:"required"`
	LastName  string
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	BaseURL   string // Link target of the welcome email; the configured site URL is used when empty.
}

// --- Output DTOs ---

// SignupOutput returns the created account, profile and tracking user.
type SignupOutput struct {
	Account      *entity.Account
	Profile      *entity.Profile
	TrackingUser *entity.TrackingUser
}

// LoginOutput returns the primary session together with the tracking credential.
type LoginOutput struct {
	Session            *entity.AccountSession
	Profile            *entity.Profile
	TrackingCredential *entity.SessionCredential
	TrackingExpiresAt  time.Time
}

// AccountUsecase defines the account operations exposed to the delivery layer.
type AccountUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// Login signs in and guarantees a tracking session, or rolls the primary session back.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	Logout(ctx context.Context, accessToken string, profileID uuid.UUID) error

	// Authenticate resolves the account and profile behind an access token.
	Authenticate(ctx context.Context, accessToken string) (*entity.Account, *entity.Profile, error)

	ChangePassword(ctx context.Context, account *entity.Account, currentPassword, newPassword string) error

	ChangeEmail(ctx context.Context, account *entity.Account, newEmail, password string) (*entity.Account, error)

	// ForgotPassword always succeeds so callers cannot probe for registered emails.
	ForgotPassword(ctx context.Context, email, redirectTo string) error

	ResetPassword(ctx context.Context, tokenHash, newPassword string) error

	ExchangeCode(ctx context.Context, code string) (*entity.AccountSession, error)
}
