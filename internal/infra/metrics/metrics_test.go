package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEndpointLabel(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{endpoint: "/devices", want: "/devices"},
		{endpoint: "/devices/42", want: "/devices/:id"},
		{endpoint: "/users/7", want: "/users/:id"},
		{endpoint: "/session/token", want: "/session/token"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, EndpointLabel(tt.endpoint))
		})
	}
}

func TestSessionRefreshesCounter(t *testing.T) {
	before := testutil.ToFloat64(SessionRefreshes.WithLabelValues("success"))

	SessionRefreshes.WithLabelValues("success").Inc()

	assert.InDelta(t, before+1, testutil.ToFloat64(SessionRefreshes.WithLabelValues("success")), 0.0001)
}
