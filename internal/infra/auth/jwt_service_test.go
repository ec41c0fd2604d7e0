package auth

import (
	"testing"
	"time"

	"trackio/config"
	"trackio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.SecretKey.Recovery = "test_recovery_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()
	sessionID := uuid.New()

	accessToken, refreshToken, expiresAt, err := jwtService.GenerateTokens(accountID, sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	accessClaims, err := jwtService.ValidateToken(accessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, accountID, accessClaims.AccountID)
	assert.Equal(t, sessionID, accessClaims.SessionID)

	refreshClaims, err := jwtService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, _, err := jwtService.GenerateTokens(uuid.New(), uuid.New())
	require.NoError(t, err)

	// Access and refresh tokens have different secrets.
	_, err = jwtService.ValidateToken(refreshToken, service.TokenTypeAccess)
	assert.Error(t, err)
	_, err = jwtService.ValidateToken(accessToken, service.TokenTypeRefresh)
	assert.Error(t, err)
}

func TestJWTService_OneTimeTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	accountID := uuid.New()

	recovery, err := jwtService.GenerateOneTimeToken(accountID, service.TokenTypeRecovery, "fp")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(recovery, service.TokenTypeRecovery)
	require.NoError(t, err)
	assert.Equal(t, "fp", claims.Fingerprint)
	assert.Equal(t, accountID, claims.AccountID)

	// Same secret, different type claim.
	_, err = jwtService.ValidateToken(recovery, service.TokenTypeSignup)
	assert.Error(t, err)

	_, err = jwtService.GenerateOneTimeToken(accountID, service.TokenTypeAccess, "")
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTTL: time.Nanosecond}
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, _, err := jwtService.GenerateTokens(uuid.New(), uuid.New())
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = jwtService.ValidateToken(accessToken, service.TokenTypeAccess)
	assert.Error(t, err)
}
