package auth

import (
	"time"

	"trackio/config"
	"trackio/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultAccessTTL   = 15 * time.Minute
	defaultRefreshTTL  = 7 * 24 * time.Hour
	defaultRecoveryTTL = time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret   string        // Secret key for signing access tokens.
	refreshSecret  string        // Secret key for signing refresh tokens.
	recoverySecret string        // Secret key for one-time recovery and signup tokens.
	accessTTL      time.Duration // Time-to-live for access tokens.
	refreshTTL     time.Duration // Time-to-live for refresh tokens.
	recoveryTTL    time.Duration // Time-to-live for one-time tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	s := &jwtService{
		accessSecret:   cfg.SecretKey.Access,
		refreshSecret:  cfg.SecretKey.Refresh,
		recoverySecret: cfg.SecretKey.Recovery,
		accessTTL:      defaultAccessTTL,
		refreshTTL:     defaultRefreshTTL,
		recoveryTTL:    defaultRecoveryTTL,
	}
	if s.recoverySecret == "" {
		s.recoverySecret = s.refreshSecret + ":recovery"
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			s.accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			s.refreshTTL = cfg.Auth.RefreshTTL
		}
		if cfg.Auth.RecoveryTTL > 0 {
			s.recoveryTTL = cfg.Auth.RecoveryTTL
		}
	}

	return s, nil
}

// GenerateTokens creates an access and refresh token pair bound to sessionID.
func (s *jwtService) GenerateTokens(accountID, sessionID uuid.UUID) (string, string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	accessToken, err := s.sign(service.Claims{
		AccountID:        accountID,
		SessionID:        sessionID,
		Type:             service.TokenTypeAccess,
		RegisteredClaims: registered(accountID, now, expiresAt),
	}, s.accessSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshToken, err := s.sign(service.Claims{
		AccountID:        accountID,
		SessionID:        sessionID,
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: registered(accountID, now, now.Add(s.refreshTTL)),
	}, s.refreshSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return accessToken, refreshToken, expiresAt, nil
}

// GenerateOneTimeToken creates a recovery or signup token carrying fingerprint.
func (s *jwtService) GenerateOneTimeToken(accountID uuid.UUID, tokenType, fingerprint string) (string, error) {
	if tokenType != service.TokenTypeRecovery && tokenType != service.TokenTypeSignup {
		return "", errors.Errorf("unsupported one-time token type %q", tokenType)
	}

	now := time.Now()

	return s.sign(service.Claims{
		AccountID:        accountID,
		Type:             tokenType,
		Fingerprint:      fingerprint,
		RegisteredClaims: registered(accountID, now, now.Add(s.recoveryTTL)),
	}, s.recoverySecret)
}

// ValidateToken checks signature, expiry and that the token has expectedType.
func (s *jwtService) ValidateToken(tokenString, expectedType string) (*service.Claims, error) {
	secret, err := s.secretFor(expectedType)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != expectedType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) secretFor(tokenType string) (string, error) {
	switch tokenType {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, nil
	case service.TokenTypeRecovery, service.TokenTypeSignup:
		return s.recoverySecret, nil
	default:
		return "", errors.Errorf("unknown token type %q", tokenType)
	}
}

func (s *jwtService) sign(claims service.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func registered(accountID uuid.UUID, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}
