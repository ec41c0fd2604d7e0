package account

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"
	"time"

	"trackio/config"
	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"
	"trackio/internal/infra/auth"
	"trackio/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// capturingMailer records reset links instead of sending mail.
type capturingMailer struct {
	mu    sync.Mutex
	links []string
}

func (m *capturingMailer) SendWelcomeEmail(context.Context, string, string, string, string) error {
	return nil
}

func (m *capturingMailer) SendPasswordResetEmail(_ context.Context, _, _, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append(m.links, resetURL)

	return nil
}

func newTestProvider(t *testing.T) (service.AccountProvider, *capturingMailer) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"
	cfg.SecretKey.Recovery = "recovery-secret-for-tests"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	mailer := &capturingMailer{}
	provider := New(Params{
		Accounts: postgres.NewAccountRepository(db),
		Sessions: postgres.NewAccountSessionRepository(db),
		Hasher:   auth.NewBcryptHasher(cfg),
		Tokens:   tokens,
		Mailer:   mailer,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return provider, mailer
}

func TestLocalProvider_SignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	provider, _ := newTestProvider(t)

	account, err := provider.SignUp(ctx, "Ana@Example.com", "secret1", "Ana Gomez")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", account.Email)

	_, err = provider.SignUp(ctx, "ana@example.com", "other", "Ana")
	assert.ErrorIs(t, err, service.ErrAccountAlreadyExists)

	session, err := provider.SignInWithPassword(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, account.ID, session.Account.ID)

	got, err := provider.GetUser(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	_, err = provider.SignInWithPassword(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrAccountInvalidCredentials)
	_, err = provider.SignInWithPassword(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, service.ErrAccountInvalidCredentials)
}

func TestLocalProvider_SignOutRevokesToken(t *testing.T) {
	ctx := context.Background()
	provider, _ := newTestProvider(t)

	_, err := provider.SignUp(ctx, "a@b.c", "secret1", "A")
	require.NoError(t, err)
	session, err := provider.SignInWithPassword(ctx, "a@b.c", "secret1")
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(ctx, session.AccessToken))

	_, err = provider.GetUser(ctx, session.AccessToken)
	assert.ErrorIs(t, err, service.ErrAccountTokenInvalid)
	assert.ErrorIs(t, provider.SignOut(ctx, "garbage"), service.ErrAccountTokenInvalid)
}

func TestLocalProvider_UpdateUser(t *testing.T) {
	ctx := context.Background()
	provider, _ := newTestProvider(t)

	account, err := provider.SignUp(ctx, "a@b.c", "secret1", "A")
	require.NoError(t, err)
	_, err = provider.SignUp(ctx, "taken@b.c", "secret1", "T")
	require.NoError(t, err)

	newEmail := "new@b.c"
	newPassword := "secret2"
	updated, err := provider.UpdateUser(ctx, account.ID, entity.AccountUpdate{Email: &newEmail, Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", updated.Email)

	_, err = provider.SignInWithPassword(ctx, "new@b.c", "secret2")
	require.NoError(t, err)

	taken := "taken@b.c"
	_, err = provider.UpdateUser(ctx, account.ID, entity.AccountUpdate{Email: &taken})
	assert.ErrorIs(t, err, service.ErrAccountAlreadyExists)

	_, err = provider.UpdateUser(ctx, uuid.New(), entity.AccountUpdate{Email: &newEmail})
	assert.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestLocalProvider_DeleteUser(t *testing.T) {
	ctx := context.Background()
	provider, _ := newTestProvider(t)

	account, err := provider.SignUp(ctx, "a@b.c", "secret1", "A")
	require.NoError(t, err)

	require.NoError(t, provider.DeleteUser(ctx, account.ID))
	_, err = provider.SignInWithPassword(ctx, "a@b.c", "secret1")
	assert.ErrorIs(t, err, service.ErrAccountInvalidCredentials)
	assert.ErrorIs(t, provider.DeleteUser(ctx, account.ID), service.ErrAccountNotFound)
}

func TestLocalProvider_RecoveryFlow(t *testing.T) {
	ctx := context.Background()
	provider, mailer := newTestProvider(t)

	account, err := provider.SignUp(ctx, "a@b.c", "secret1", "A")
	require.NoError(t, err)

	require.NoError(t, provider.ResetPasswordForEmail(ctx, "a@b.c", "https://app.example.com/auth/reset-password?next=%2F"))
	require.Len(t, mailer.links, 1)

	link, err := url.Parse(mailer.links[0])
	require.NoError(t, err)
	assert.Equal(t, "recovery", link.Query().Get("type"))
	assert.Equal(t, "/", link.Query().Get("next"))
	token := link.Query().Get("token_hash")
	require.NotEmpty(t, token)

	session, err := provider.VerifyOtp(ctx, token, entity.RecoveryKindRecovery)
	require.NoError(t, err)
	assert.Equal(t, account.ID, session.Account.ID)

	newPassword := "secret2"
	_, err = provider.UpdateUser(ctx, account.ID, entity.AccountUpdate{Password: &newPassword})
	require.NoError(t, err)

	// The link stops working once the password changed.
	_, err = provider.VerifyOtp(ctx, token, entity.RecoveryKindRecovery)
	assert.ErrorIs(t, err, service.ErrAccountTokenInvalid)
	_, err = provider.ExchangeCodeForSession(ctx, token)
	assert.ErrorIs(t, err, service.ErrAccountTokenInvalid)
}

func TestLocalProvider_ResetUnknownEmailIsSilent(t *testing.T) {
	provider, mailer := newTestProvider(t)

	require.NoError(t, provider.ResetPasswordForEmail(context.Background(), "ghost@b.c", "https://app.example.com/reset"))
	assert.Empty(t, mailer.links)
}

func TestLocalProvider_ExchangeCode(t *testing.T) {
	ctx := context.Background()
	provider, mailer := newTestProvider(t)

	_, err := provider.SignUp(ctx, "a@b.c", "secret1", "A")
	require.NoError(t, err)
	require.NoError(t, provider.ResetPasswordForEmail(ctx, "a@b.c", "https://app.example.com/cb"))

	link, err := url.Parse(mailer.links[0])
	require.NoError(t, err)

	session, err := provider.ExchangeCodeForSession(ctx, link.Query().Get("token_hash"))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), session.ExpiresAt, time.Minute)

	_, err = provider.ExchangeCodeForSession(ctx, "nonsense")
	assert.ErrorIs(t, err, service.ErrAccountTokenInvalid)
}

func TestRecoveryLink_RejectsRelativeURL(t *testing.T) {
	_, err := recoveryLink("/reset", "tok", entity.RecoveryKindRecovery)
	assert.Error(t, err)
}
