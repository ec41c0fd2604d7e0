package traccar

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"trackio/internal/domain/constants"
	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"

	"github.com/pkg/errors"
)

var sessionCookiePattern = regexp.MustCompile(constants.TrackingSessionCookie + `=([^;]+)`)

// CreateSession logs in with email and password. A 404 on login means the
// user is unknown and is reported as an authentication failure.
func (c *Client) CreateSession(ctx context.Context, email, password string) (*service.TrackingSession, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "is required"}
	}

	resp, err := c.Do(ctx, "/session", RequestOptions{
		Method:      http.MethodPost,
		Body:        Form{{Key: "email", Value: email}, {Key: "password", Value: password}},
		ContentType: ContentTypeForm + formCharset,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			apiErr.unknownUser = true
		}

		return nil, err
	}

	session := &service.TrackingSession{
		Credential: entity.NewSessionCredential(ExtractSessionID(resp.Header), entity.CredentialSourceCookie),
	}
	if resp.Data != nil {
		var user entity.TrackingUser
		if err := resp.Decode(&user); err != nil {
			return nil, err
		}
		session.User = &user
	}

	return session, nil
}

// GenerateToken asks for an explicit session token with basic auth.
// It returns a nil credential when the service answers with an empty body.
func (c *Client) GenerateToken(ctx context.Context, email, password string, expiration *time.Time) (*entity.SessionCredential, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &ValidationError{Field: "credentials", Reason: "are required for token generation"}
	}

	form := Form{}
	if expiration != nil {
		form = append(form, FormField{Key: "expiration", Value: *expiration})
	}

	resp, err := c.Do(ctx, "/session/token", RequestOptions{
		Method:      http.MethodPost,
		Body:        form,
		ContentType: ContentTypeForm,
		AuthType:    AuthBasic,
		Email:       strings.TrimSpace(email),
		Password:    password,
	})
	if err != nil {
		return nil, err
	}

	return entity.NewSessionCredential(resp.Text(), entity.CredentialSourceToken), nil
}

// GetSession returns the user of the current session.
func (c *Client) GetSession(ctx context.Context, token string) (*entity.TrackingUser, error) {
	opts := RequestOptions{Method: http.MethodGet}
	if token != "" {
		opts.AuthType = AuthBearer
		opts.Token = token
	}

	resp, err := c.Do(ctx, "/session", opts)
	if err != nil {
		return nil, err
	}

	var user entity.TrackingUser
	if err := resp.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// CloseSession logs out. A token credential is sent as bearer, a cookie credential as a cookie.
func (c *Client) CloseSession(ctx context.Context, credential *entity.SessionCredential) error {
	if credential.IsBlank() {
		return &ValidationError{Field: "session credential", Reason: "is required"}
	}

	opts := RequestOptions{Method: http.MethodDelete}
	if credential.Source == entity.CredentialSourceToken {
		opts.AuthType = AuthBearer
		opts.Token = strings.TrimSpace(credential.Value)
	} else {
		opts.Cookie = credential.Value
	}

	_, err := c.Do(ctx, "/session", opts)

	return err
}

// ExtractSessionID returns the JSESSIONID value from Set-Cookie headers, or "".
func ExtractSessionID(header http.Header) string {
	joined := strings.Join(header.Values("Set-Cookie"), "; ")
	if joined == "" {
		// Headers built by hand may carry the lowercase key.
		joined = strings.Join(header["set-cookie"], "; ")
	}

	match := sessionCookiePattern.FindStringSubmatch(joined)
	if len(match) < 2 {
		return ""
	}

	return strings.TrimSpace(match[1])
}
