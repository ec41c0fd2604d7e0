// Package account implements the primary account provider on the application's own database.
package account

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"trackio/internal/domain/entity"
	"trackio/internal/domain/repository"
	"trackio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// localProvider stores accounts in postgres and issues JWT sessions.
// Every issued token pair is bound to an account_sessions row so sign out revokes it.
type localProvider struct {
	accounts repository.AccountRepository
	sessions repository.AccountSessionRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	mailer   service.Mailer
	logger   *slog.Logger
	now      func() time.Time
}

// Params holds dependencies for the account provider, injected by Fx
type Params struct {
	fx.In

	Accounts repository.AccountRepository
	Sessions repository.AccountSessionRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenService
	Mailer   service.Mailer
	Logger   *slog.Logger
}

// New creates the local account provider.
func New(params Params) service.AccountProvider {
	return &localProvider{
		accounts: params.Accounts,
		sessions: params.Sessions,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		mailer:   params.Mailer,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// SignUp creates an account with a hashed password.
func (p *localProvider) SignUp(ctx context.Context, email, password, name string) (*entity.Account, error) {
	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	record := &repository.AccountRecord{
		Account:      entity.Account{ID: uuid.New(), Email: email, Name: name},
		PasswordHash: hash,
	}
	if err := p.accounts.CreateAccount(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, service.ErrAccountAlreadyExists
		}

		return nil, err
	}

	return &record.Account, nil
}

// SignInWithPassword verifies the password and opens a session.
// Unknown emails and wrong passwords give the same error.
func (p *localProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.AccountSession, error) {
	record, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, service.ErrAccountInvalidCredentials
		}

		return nil, err
	}

	if !p.hasher.Check(password, record.PasswordHash) {
		return nil, service.ErrAccountInvalidCredentials
	}

	return p.openSession(ctx, &record.Account)
}

// GetUser resolves the account behind a live access token.
func (p *localProvider) GetUser(ctx context.Context, accessToken string) (*entity.Account, error) {
	claims, err := p.liveSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	record, err := p.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, service.ErrAccountTokenInvalid
		}

		return nil, err
	}

	return &record.Account, nil
}

// UpdateUser applies the requested email and password changes.
func (p *localProvider) UpdateUser(ctx context.Context, accountID uuid.UUID, update entity.AccountUpdate) (*entity.Account, error) {
	if _, err := p.findAccount(ctx, accountID); err != nil {
		return nil, err
	}

	if update.Email != nil {
		if err := p.accounts.UpdateEmail(ctx, accountID, *update.Email); err != nil {
			if errors.Is(err, repository.ErrDuplicateAccount) {
				return nil, service.ErrAccountAlreadyExists
			}

			return nil, err
		}
	}

	if update.Password != nil {
		hash, err := p.hasher.Hash(*update.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		if err := p.accounts.UpdatePasswordHash(ctx, accountID, hash); err != nil {
			return nil, err
		}
	}

	record, err := p.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &record.Account, nil
}

// DeleteUser removes an account and revokes its sessions.
func (p *localProvider) DeleteUser(ctx context.Context, accountID uuid.UUID) error {
	if err := p.sessions.DeleteByAccount(ctx, accountID); err != nil {
		return err
	}

	if err := p.accounts.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return service.ErrAccountNotFound
		}

		return err
	}

	return nil
}

// SignOut revokes the session behind accessToken.
func (p *localProvider) SignOut(ctx context.Context, accessToken string) error {
	claims, err := p.liveSession(ctx, accessToken)
	if err != nil {
		return err
	}

	return p.sessions.DeleteSession(ctx, claims.SessionID)
}

// ResetPasswordForEmail mails a recovery link. Unknown emails succeed silently.
func (p *localProvider) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	record, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			p.logger.Debug("[Account] Recovery requested for unknown email")

			return nil
		}

		return err
	}

	token, err := p.tokens.GenerateOneTimeToken(record.Account.ID, service.TokenTypeRecovery, fingerprint(record.PasswordHash))
	if err != nil {
		return err
	}

	link, err := recoveryLink(redirectTo, token, entity.RecoveryKindRecovery)
	if err != nil {
		return err
	}

	return p.mailer.SendPasswordResetEmail(ctx, record.Account.Email, record.Account.Name, link)
}

// VerifyOtp redeems a one-time token for a session. A token becomes invalid
// as soon as the password it was issued against changes.
func (p *localProvider) VerifyOtp(ctx context.Context, tokenHash string, kind entity.RecoveryKind) (*entity.AccountSession, error) {
	claims, err := p.tokens.ValidateToken(tokenHash, string(kind))
	if err != nil {
		return nil, errors.Wrap(service.ErrAccountTokenInvalid, err.Error())
	}

	record, err := p.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, service.ErrAccountTokenInvalid
		}

		return nil, err
	}

	if claims.Fingerprint != fingerprint(record.PasswordHash) {
		return nil, service.ErrAccountTokenInvalid
	}

	return p.openSession(ctx, &record.Account)
}

// ExchangeCodeForSession accepts a recovery or signup token as the callback code.
func (p *localProvider) ExchangeCodeForSession(ctx context.Context, code string) (*entity.AccountSession, error) {
	session, err := p.VerifyOtp(ctx, code, entity.RecoveryKindRecovery)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, service.ErrAccountTokenInvalid) {
		return nil, err
	}

	return p.VerifyOtp(ctx, code, entity.RecoveryKindSignup)
}

func (p *localProvider) openSession(ctx context.Context, account *entity.Account) (*entity.AccountSession, error) {
	sessionID := uuid.New()

	accessToken, refreshToken, expiresAt, err := p.tokens.GenerateTokens(account.ID, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := p.sessions.CreateSession(ctx, sessionID, account.ID, p.now().Add(p.tokens.GetRefreshTokenDuration())); err != nil {
		return nil, err
	}

	return &entity.AccountSession{
		ID:           sessionID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Account:      account,
	}, nil
}

func (p *localProvider) liveSession(ctx context.Context, accessToken string) (*service.Claims, error) {
	claims, err := p.tokens.ValidateToken(accessToken, service.TokenTypeAccess)
	if err != nil {
		return nil, errors.Wrap(service.ErrAccountTokenInvalid, err.Error())
	}

	if _, err := p.sessions.FindSession(ctx, claims.SessionID, p.now()); err != nil {
		if errors.Is(err, repository.ErrAccountSessionNotFound) {
			return nil, service.ErrAccountTokenInvalid
		}

		return nil, err
	}

	return claims, nil
}

func (p *localProvider) findAccount(ctx context.Context, accountID uuid.UUID) (*repository.AccountRecord, error) {
	record, err := p.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, service.ErrAccountNotFound
		}

		return nil, err
	}

	return record, nil
}

// fingerprint derives a short stable digest of a password hash.
func fingerprint(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))

	return hex.EncodeToString(sum[:8])
}

func recoveryLink(redirectTo, token string, kind entity.RecoveryKind) (string, error) {
	target, err := url.Parse(strings.TrimSpace(redirectTo))
	if err != nil || target.Scheme == "" || target.Host == "" {
		return "", errors.Errorf("invalid redirect url %q", redirectTo)
	}

	query := target.Query()
	query.Set("token_hash", token)
	query.Set("type", string(kind))
	target.RawQuery = query.Encode()

	return target.String(), nil
}
