package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"traccar": map[string]any{
			"baseUrl":    "",
			"adminEmail": "",
			"rateLimit": map[string]any{
				"requestsPerSecond": 0,
			},
		},
		"secretKey": map[string]any{
			"recovery": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TRACCAR_BASEURL", want: "traccar.baseUrl"},
		{envKey: "TRACCAR_ADMINEMAIL", want: "traccar.adminEmail"},
		{envKey: "TRACCAR_RATELIMIT_REQUESTSPERSECOND", want: "traccar.rateLimit.requestsPerSecond"},
		{envKey: "SECRETKEY_RECOVERY", want: "secretKey.recovery"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
