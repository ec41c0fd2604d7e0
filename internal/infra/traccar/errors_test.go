package traccar

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"trackio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Message(t *testing.T) {
	long := strings.Repeat("x", 600)

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
		wantRemote  string
	}{
		{
			name:        "unauthorized canned",
			status:      http.StatusUnauthorized,
			wantMessage: "unauthorized: session invalid or expired",
		},
		{
			name:        "unauthorized keeps remote detail",
			status:      http.StatusUnauthorized,
			contentType: "application/json",
			body:        `{"message":"bad password"}`,
			wantMessage: "unauthorized: session invalid or expired: bad password",
			wantRemote:  "bad password",
		},
		{
			name:        "empty object uses canned",
			status:      http.StatusNotFound,
			contentType: "application/json",
			body:        `{}`,
			wantMessage: "resource not found",
		},
		{
			name:        "error field",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"error":"duplicate"}`,
			wantMessage: "duplicate",
			wantRemote:  "duplicate",
		},
		{
			name:        "string body truncated",
			status:      http.StatusBadRequest,
			contentType: "text/plain",
			body:        long,
			wantMessage: long[:500],
			wantRemote:  long[:500],
		},
		{
			name:        "server error canned",
			status:      http.StatusBadGateway,
			wantMessage: "Traccar API error: Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Do(context.Background(), "/users", RequestOptions{})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode())
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantRemote, apiErr.RemoteMessage())
			assert.Equal(t, tt.body, apiErr.RawBody)
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		status int
		target error
	}{
		{status: http.StatusUnauthorized, target: service.ErrTrackingAuthentication},
		{status: http.StatusForbidden, target: service.ErrTrackingForbidden},
		{status: http.StatusNotFound, target: service.ErrTrackingNotFound},
		{status: http.StatusBadRequest, target: service.ErrTrackingValidation},
		{status: http.StatusTooManyRequests, target: service.ErrTrackingTransient},
		{status: http.StatusServiceUnavailable, target: service.ErrTrackingTransient},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := newAPIError(http.MethodGet, "/x", tt.status, nil, nil)
			assert.ErrorIs(t, err, tt.target)
			if tt.target != service.ErrTrackingTransient {
				assert.NotErrorIs(t, err, service.ErrTrackingTransient)
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := &ValidationError{Field: "email", Reason: "is required"}

	assert.ErrorIs(t, err, service.ErrTrackingValidation)
	assert.Equal(t, "traccar: email is required", err.Error())
}
