package traccar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"trackio/internal/domain/entity"
	"trackio/internal/infra/metrics"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// AuthType selects the authentication scheme of a request.
type AuthType string

const (
	AuthNone   AuthType = ""
	AuthBasic  AuthType = "basic"
	AuthBearer AuthType = "bearer"
)

// Content types understood by the request engine.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	formCharset      = ";charset=UTF-8"
	maxResponseBytes = 10 << 20
)

// RequestOptions describes a single API call.
//
// Authentication precedence: basic when AuthType is AuthBasic and both Email
// and Password are set, else bearer when AuthType is AuthBearer and Token is
// set, else a session cookie when Cookie is set. At most one scheme is sent.
type RequestOptions struct {
	Method      string
	Query       url.Values
	Body        any
	Header      http.Header
	AuthType    AuthType
	Email       string
	Password    string
	Token       string
	Cookie      string
	ContentType string
}

// FormField is one key/value pair of an ordered form body. Nil values are dropped.
type FormField struct {
	Key   string
	Value any
}

// Form is an ordered form body.
type Form []FormField

// Do performs an API call against endpoint, relative to the base URL.
// Non-2xx responses are returned as *APIError, connection failures as *NetworkError.
func (c *Client) Do(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}

	reqURL := c.baseURL + endpoint
	if len(opts.Query) > 0 {
		reqURL += "?" + opts.Query.Encode()
	}

	body, contentType, err := encodeBody(opts.Body, opts.ContentType)
	if err != nil {
		return nil, errors.Wrapf(err, "encode body for %s %s", method, endpoint)
	}

	ctx, cancel := context.WithTimeoutCause(ctx, c.timeout, errRequestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.guard.execute(ctx, method, endpoint, func() (*Response, error) {
		return c.roundTrip(ctx, method, reqURL, endpoint, body, contentType, opts)
	})
	c.observe(method, endpoint, opts, resp, err, time.Since(start))

	return resp, err
}

func (c *Client) roundTrip(
	ctx context.Context,
	method, reqURL, endpoint string,
	body []byte,
	contentType string,
	opts RequestOptions,
) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, &NetworkError{Method: method, Endpoint: endpoint, Err: err}
	}

	for key, values := range opts.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", ContentTypeJSON)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	applyAuth(req, opts)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, &NetworkError{Method: method, Endpoint: endpoint, Err: err}
	}

	resp := &Response{Status: httpResp.StatusCode, Header: httpResp.Header}
	if httpResp.StatusCode != http.StatusNoContent {
		resp.Raw = raw
		resp.Data = parseBody(raw, httpResp.Header.Get("Content-Type"))
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, newAPIError(method, endpoint, httpResp.StatusCode, resp.Data, raw)
	}

	return resp, nil
}

func applyAuth(req *http.Request, opts RequestOptions) {
	switch {
	case opts.AuthType == AuthBasic && opts.Email != "" && opts.Password != "":
		req.SetBasicAuth(opts.Email, opts.Password)
	case opts.AuthType == AuthBearer && opts.Token != "":
		req.Header.Set("Authorization", (&entity.SessionCredential{Value: opts.Token}).AuthorizationHeader())
	case strings.TrimSpace(opts.Cookie) != "":
		req.Header.Set("Cookie", (&entity.SessionCredential{Value: opts.Cookie}).CookieHeader())
	}
}

func (c *Client) observe(method, endpoint string, opts RequestOptions, resp *Response, err error, elapsed time.Duration) {
	label := metrics.EndpointLabel(endpoint)
	status := "error"
	attrs := []any{
		slog.String("method", method),
		slog.String("endpoint", endpoint),
		slog.Duration("duration", elapsed),
		slog.Bool("has_cookie", opts.Cookie != ""),
		slog.Int("cookie_length", len(opts.Cookie)),
		slog.String("auth_type", string(opts.AuthType)),
	}

	var apiErr *APIError
	switch {
	case err == nil:
		status = strconv.Itoa(resp.Status)
	case errors.As(err, &apiErr):
		status = strconv.Itoa(apiErr.Status)
	}
	metrics.TrackingRequests.WithLabelValues(method, label, status).Inc()
	metrics.TrackingRequestDuration.WithLabelValues(method, label).Observe(elapsed.Seconds())

	if err != nil {
		c.logger.Warn("[Traccar] Request failed", append(attrs, slog.String("status", status), slog.Any("error", err))...)

		return
	}

	if c.debug {
		c.logger.Debug("[Traccar] Request completed", append(attrs, slog.String("status", status))...)
	}
}

// encodeBody serializes body per contentType and returns the effective content type.
// A nil body yields no payload and no content type.
func encodeBody(body any, contentType string) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	if contentType == "" {
		contentType = ContentTypeJSON
	}

	lower := strings.ToLower(contentType)
	switch {
	case strings.Contains(lower, ContentTypeForm):
		if !strings.Contains(lower, "charset") {
			contentType += formCharset
		}
		encoded, err := encodeForm(body)
		if err != nil {
			return nil, "", err
		}

		return []byte(encoded), contentType, nil

	case strings.Contains(lower, "json"):
		switch v := body.(type) {
		case []byte:
			return v, contentType, nil
		case json.RawMessage:
			return v, contentType, nil
		case string:
			return []byte(v), contentType, nil
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, "", errors.Wrap(err, "marshal json body")
		}

		return encoded, contentType, nil
	}

	switch v := body.(type) {
	case []byte:
		return v, contentType, nil
	case string:
		return []byte(v), contentType, nil
	case io.Reader:
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, "", errors.Wrap(err, "read raw body")
		}

		return data, contentType, nil
	default:
		return nil, "", errors.Errorf("unsupported body type %T for content type %s", body, contentType)
	}
}

func encodeForm(body any) (string, error) {
	var fields Form
	switch v := body.(type) {
	case Form:
		fields = v
	case []FormField:
		fields = v
	case url.Values:
		return v.Encode(), nil
	case map[string]string:
		for _, key := range sortedKeys(v) {
			fields = append(fields, FormField{Key: key, Value: v[key]})
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			fields = append(fields, FormField{Key: key, Value: v[key]})
		}
	case string:
		return v, nil
	default:
		return "", errors.Errorf("unsupported form body type %T", body)
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		value, ok := formValue(f.Value)
		if !ok {
			continue
		}
		parts = append(parts, url.QueryEscape(f.Key)+"="+url.QueryEscape(value))
	}

	return strings.Join(parts, "&"), nil
}

// formValue renders a form value. It reports false for nil values.
func formValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		v = rv.Elem().Interface()
	}

	switch t := v.(type) {
	case string:
		return t, true
	case time.Time:
		return t.UTC().Format(time.RFC3339), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprint(t), true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
