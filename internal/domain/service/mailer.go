package service

import "context"

// Mailer delivers transactional mail.
type Mailer interface {
	// SendWelcomeEmail sends the account details to a new user. baseURL is required.
	SendWelcomeEmail(ctx context.Context, email, name, password, baseURL string) error

	// SendPasswordResetEmail sends a recovery link.
	SendPasswordResetEmail(ctx context.Context, email, name, resetURL string) error
}
