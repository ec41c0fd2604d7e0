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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded captures what the fake tracking service received.
type recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recorded) {
	t.Helper()

	var calls []recorded
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Options{
		BaseURL:   server.URL + "/api/",
		UserAgent: "trackio-test",
		Timeout:   2 * time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:         1,
			Interval:            time.Minute,
			Timeout:             time.Minute,
			ConsecutiveFailures: 3,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return client, &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestDo_Headers(t *testing.T) {
	tests := []struct {
		name            string
		opts            RequestOptions
		wantContentType string
		wantAuth        string
		wantCookie      string
		wantBody        string
	}{
		{
			name:            "json body defaults content type",
			opts:            RequestOptions{Method: http.MethodPost, Body: map[string]any{"name": "van"}},
			wantContentType: "application/json",
			wantBody:        `{"name":"van"}`,
		},
		{
			name:            "form body gains charset",
			opts:            RequestOptions{Method: http.MethodPost, Body: Form{{Key: "email", Value: "a@b.c"}, {Key: "skip", Value: nil}}, ContentType: ContentTypeForm},
			wantContentType: "application/x-www-form-urlencoded;charset=UTF-8",
			wantBody:        "email=a%40b.c",
		},
		{
			name:     "basic wins over bearer and cookie",
			opts:     RequestOptions{AuthType: AuthBasic, Email: "admin", Password: "pw", Token: "tok", Cookie: "c"},
			wantAuth: "Basic YWRtaW46cHc=",
		},
		{
			name:     "bearer wins over cookie",
			opts:     RequestOptions{AuthType: AuthBearer, Token: "tok", Cookie: "c"},
			wantAuth: "Bearer tok",
		},
		{
			name:       "basic without password falls back to cookie",
			opts:       RequestOptions{AuthType: AuthBasic, Email: "admin", Cookie: " abc "},
			wantCookie: "JSESSIONID=abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, `{}`)
			})

			_, err := client.Do(context.Background(), "/devices", tt.opts)
			require.NoError(t, err)
			require.Len(t, *calls, 1)

			got := (*calls)[0]
			assert.Equal(t, "/api/devices", got.Path)
			assert.Equal(t, "application/json", got.Header.Get("Accept"))
			assert.Equal(t, "trackio-test", got.Header.Get("User-Agent"))
			assert.Equal(t, tt.wantContentType, got.Header.Get("Content-Type"))
			assert.Equal(t, tt.wantAuth, got.Header.Get("Authorization"))
			assert.Equal(t, tt.wantCookie, got.Header.Get("Cookie"))
			assert.Equal(t, tt.wantBody, got.Body)
		})
	}
}

func TestDo_ParsesBodies(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        any
	}{
		{name: "no content", status: http.StatusNoContent, want: nil},
		{name: "blank body", status: http.StatusOK, contentType: "application/json", body: "  ", want: nil},
		{name: "json object", status: http.StatusOK, contentType: "application/json", body: `{"id":1}`, want: map[string]any{"id": float64(1)}},
		{name: "invalid json falls back to raw", status: http.StatusOK, contentType: "application/json", body: "oops", want: "oops"},
		{name: "plain text stays raw", status: http.StatusOK, contentType: "text/plain", body: `{"id":1}`, want: `{"id":1}`},
		{name: "unknown type tries json", status: http.StatusOK, contentType: "application/octet-stream", body: `[1]`, want: []any{float64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			resp, err := client.Do(context.Background(), "/server", RequestOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.want, resp.Data)
		})
	}
}

func TestDo_QueryString(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	_, err := client.Do(context.Background(), "/devices", RequestOptions{Query: map[string][]string{"id": {"9"}}})
	require.NoError(t, err)
	assert.Equal(t, "id=9", (*calls)[0].Query)
}

func TestDo_NetworkError(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://127.0.0.1:1/api", Timeout: time.Second}, nil)

	_, err := client.Do(context.Background(), "/server", RequestOptions{})
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, err.Error(), "error connecting to Traccar API")
}

func TestDo_TimeoutCancelsSlowServer(t *testing.T) {
	handlerDelay := 3 * time.Second
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(handlerDelay):
		}
	}))
	t.Cleanup(server.Close)

	client := NewClient(Options{BaseURL: server.URL + "/api", Timeout: 100 * time.Millisecond}, nil)

	start := time.Now()
	_, err := client.Do(context.Background(), "/server", RequestOptions{})
	elapsed := time.Since(start)

	require.ErrorIs(t, err, service.ErrTrackingTransient)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Less(t, elapsed, time.Second)
}

func TestEncodeForm(t *testing.T) {
	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var missing *string

	tests := []struct {
		name string
		body any
		want string
	}{
		{name: "ordered fields", body: Form{{Key: "b", Value: "2"}, {Key: "a", Value: 1}}, want: "b=2&a=1"},
		{name: "nil values dropped", body: Form{{Key: "a", Value: nil}, {Key: "b", Value: missing}, {Key: "c", Value: true}}, want: "c=true"},
		{name: "time rendered as RFC3339", body: Form{{Key: "expiration", Value: expiry}}, want: "expiration=2026-01-02T03%3A04%3A05Z"},
		{name: "map sorted", body: map[string]any{"z": "1", "a": "x y"}, want: "a=x+y&z=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeForm(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
