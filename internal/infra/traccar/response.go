package traccar

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ErrMalformedResponse is returned when a successful response cannot be decoded.
var ErrMalformedResponse = errors.New("traccar: malformed response body")

// Response is a successful API response.
// Data holds the parsed body: JSON values, a raw string, or nil for empty and 204 responses.
type Response struct {
	Status int
	Header http.Header
	Data   any
	Raw    []byte
}

// Decode unmarshals the raw body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if r == nil || len(bytes.TrimSpace(r.Raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(r.Raw, v); err != nil {
		return errors.Wrapf(ErrMalformedResponse, "decode %T: %v", v, err)
	}

	return nil
}

// Text returns the body as a trimmed string. JSON string bodies are unquoted.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}

	if s, ok := r.Data.(string); ok {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(string(r.Raw))
}

// parseBody interprets raw according to the response content type.
// JSON content falls back to the raw text when it does not parse, text/plain
// is kept raw, and anything else is tried as JSON first.
func parseBody(raw []byte, contentType string) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	lower := strings.ToLower(contentType)
	if strings.Contains(lower, "text/plain") {
		return string(raw)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return string(raw)
	}

	return data
}
