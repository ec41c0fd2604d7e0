package traccar

import (
	"context"
	"net/http"
	"testing"
	"time"

	"trackio/internal/domain/entity"
	"trackio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Set-Cookie", "other=1; Path=/")
		w.Header().Add("Set-Cookie", "JSESSIONID=node0abc; Path=/; HttpOnly")
		writeJSON(w, http.StatusOK, `{"id":17,"name":"Ana","email":"ana@example.com"}`)
	})

	session, err := client.CreateSession(context.Background(), "  ana@example.com ", "secret")
	require.NoError(t, err)

	require.NotNil(t, session.User)
	assert.Equal(t, int64(17), session.User.ID)
	require.NotNil(t, session.Credential)
	assert.Equal(t, "node0abc", session.Credential.Value)
	assert.Equal(t, entity.CredentialSourceCookie, session.Credential.Source)

	got := (*calls)[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/session", got.Path)
	assert.Equal(t, "email=ana%40example.com&password=secret", got.Body)
	assert.Equal(t, "application/x-www-form-urlencoded;charset=UTF-8", got.Header.Get("Content-Type"))
}

func TestCreateSession_NoCookie(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":3}`)
	})

	session, err := client.CreateSession(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Nil(t, session.Credential)
	assert.Equal(t, int64(3), session.User.ID)
}

func TestCreateSession_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: service.ErrTrackingAuthentication},
		{name: "unknown user", status: http.StatusNotFound, want: service.ErrTrackingAuthentication},
		{name: "server error", status: http.StatusInternalServerError, want: service.ErrTrackingTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.CreateSession(context.Background(), "a@b.c", "pw")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateSession_ValidatesBeforeNetwork(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.CreateSession(context.Background(), "   ", "pw")
	assert.ErrorIs(t, err, service.ErrTrackingValidation)

	_, err = client.CreateSession(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, service.ErrTrackingValidation)

	assert.Empty(t, *calls)
}

func TestGenerateToken(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("tok-123\n"))
	})

	expiry := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	cred, err := client.GenerateToken(context.Background(), "a@b.c", "pw", &expiry)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "tok-123", cred.Value)
	assert.Equal(t, entity.CredentialSourceToken, cred.Source)

	got := (*calls)[0]
	assert.Equal(t, "/api/session/token", got.Path)
	assert.Equal(t, "expiration=2026-05-01T00%3A00%3A00Z", got.Body)
	assert.Contains(t, got.Header.Get("Authorization"), "Basic ")
}

func TestGenerateToken_EmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cred, err := client.GenerateToken(context.Background(), "a@b.c", "pw", nil)
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestCloseSession(t *testing.T) {
	tests := []struct {
		name       string
		credential *entity.SessionCredential
		wantAuth   string
		wantCookie string
	}{
		{
			name:       "cookie credential",
			credential: &entity.SessionCredential{Value: "abc", Source: entity.CredentialSourceCookie},
			wantCookie: "JSESSIONID=abc",
		},
		{
			name:       "token credential",
			credential: &entity.SessionCredential{Value: "tok", Source: entity.CredentialSourceToken},
			wantAuth:   "Bearer tok",
		},
		{
			name:       "stored credential is sent back as a cookie",
			credential: (&entity.IdentityMapping{SessionToken: stringPtr("tok-from-token-endpoint")}).Credential(),
			wantCookie: "JSESSIONID=tok-from-token-endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			require.NoError(t, client.CloseSession(context.Background(), tt.credential))
			got := (*calls)[0]
			assert.Equal(t, http.MethodDelete, got.Method)
			assert.Equal(t, tt.wantAuth, got.Header.Get("Authorization"))
			assert.Equal(t, tt.wantCookie, got.Header.Get("Cookie"))
		})
	}
}

func TestExtractSessionID(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		want   string
	}{
		{name: "none", header: http.Header{}, want: ""},
		{name: "single", header: http.Header{"Set-Cookie": {"JSESSIONID=xyz; Path=/"}}, want: "xyz"},
		{name: "among others", header: http.Header{"Set-Cookie": {"a=1", "JSESSIONID=n1; HttpOnly"}}, want: "n1"},
		{name: "lowercase key", header: http.Header{"set-cookie": {"JSESSIONID=low"}}, want: "low"},
		{name: "other cookie only", header: http.Header{"Set-Cookie": {"SESSION=1"}}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSessionID(tt.header))
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
