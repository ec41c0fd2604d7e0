package traccar

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trackio/config"
	"trackio/internal/domain/service"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_OpensOnTransientFailures(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for range 3 {
		_, err := client.Do(context.Background(), "/server", RequestOptions{})
		require.ErrorIs(t, err, service.ErrTrackingTransient)
	}
	assert.Equal(t, gobreaker.StateOpen, client.guard.state())

	_, err := client.Do(context.Background(), "/server", RequestOptions{})
	require.ErrorIs(t, err, service.ErrTrackingTransient)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Len(t, *calls, 3)
}

func TestGuard_ClientErrorsKeepCircuitClosed(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	for range 5 {
		_, err := client.Do(context.Background(), "/session", RequestOptions{})
		require.ErrorIs(t, err, service.ErrTrackingAuthentication)
	}

	assert.Equal(t, gobreaker.StateClosed, client.guard.state())
	assert.Len(t, *calls, 5)
}

// newSlowServerClient serves /slow by blocking until the client goes away and
// answers everything else immediately.
func newSlowServerClient(t *testing.T, timeout time.Duration) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/slow" {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}

			return
		}
		writeJSON(w, http.StatusOK, `[]`)
	}))
	t.Cleanup(server.Close)

	return NewClient(Options{
		BaseURL: server.URL + "/api",
		Timeout: timeout,
		Breaker: config.BreakerConfig{
			MaxRequests:         1,
			Interval:            time.Minute,
			Timeout:             time.Minute,
			ConsecutiveFailures: 3,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGuard_CallerCancellationKeepsCircuitClosed(t *testing.T) {
	client := newSlowServerClient(t, 2*time.Second)

	for range 3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		_, err := client.Do(ctx, "/slow", RequestOptions{})
		cancel()

		require.ErrorIs(t, err, service.ErrTrackingTransient)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
	assert.Equal(t, gobreaker.StateClosed, client.guard.state())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Do(ctx, "/slow", RequestOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, gobreaker.StateClosed, client.guard.state())

	resp, err := client.Do(context.Background(), "/devices", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestGuard_RequestTimeoutCountsAsFailure(t *testing.T) {
	client := newSlowServerClient(t, 20*time.Millisecond)

	for range 3 {
		_, err := client.Do(context.Background(), "/slow", RequestOptions{})
		require.ErrorIs(t, err, service.ErrTrackingTransient)
	}

	assert.Equal(t, gobreaker.StateOpen, client.guard.state())
}
