package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultTraccarBaseURL    = "http://localhost:8082/api"
	defaultTraccarTimeout    = 15 * time.Second
	defaultTraccarSessionTTL = 7 * 24 * time.Hour
	defaultTraccarUserAgent  = "trackio/1.0"

	defaultBreakerMaxRequests         = 1
	defaultBreakerInterval            = time.Minute
	defaultBreakerTimeout             = 30 * time.Second
	defaultBreakerConsecutiveFailures = 5

	defaultPasswordMinLength = 6
	defaultBcryptCost        = 12
	defaultAccessTTL         = 15 * time.Minute
	defaultRefreshTTL        = 7 * 24 * time.Hour
	defaultRecoveryTTL       = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access   string `json:"access" yaml:"access"`
		Refresh  string `json:"refresh" yaml:"refresh"`
		Recovery string `json:"recovery" yaml:"recovery"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Traccar configuration for the tracking service client
	Traccar *TraccarConfig `json:"traccar" yaml:"traccar"`

	// Site holds public facing URLs used in outgoing mail
	Site SiteConfig `json:"site" yaml:"site"`

	// Mailer configuration for SMTP delivery
	Mailer *MailerConfig `json:"mailer" yaml:"mailer"`

	// PubSub configuration for sync event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig holds schema management switches
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines primary account provider settings
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTTL         time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL        time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
	RecoveryTTL       time.Duration `json:"recoveryTtl" yaml:"recoveryTtl"`
	PasswordMinLength int           `json:"passwordMinLength" yaml:"passwordMinLength"`
}

// TraccarConfig defines the tracking service endpoint and client behavior
type TraccarConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	AdminEmail    string        `json:"adminEmail" yaml:"adminEmail"`
	AdminPassword string        `json:"adminPassword" yaml:"adminPassword"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	SessionTTL    time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	UserAgent     string        `json:"userAgent" yaml:"userAgent"`
	Debug         bool          `json:"debug" yaml:"debug"`

	Breaker   BreakerConfig   `json:"breaker" yaml:"breaker"`
	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// HasAdminCredentials reports whether both admin email and password are set.
func (c *TraccarConfig) HasAdminCredentials() bool {
	return c != nil && strings.TrimSpace(c.AdminEmail) != "" && c.AdminPassword != ""
}

// BreakerConfig tunes the circuit breaker in front of the tracking service
type BreakerConfig struct {
	// Requests allowed through while half-open
	MaxRequests uint32 `json:"maxRequests" yaml:"maxRequests"`

	// Cyclic period for clearing counts while closed
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Time spent open before probing again
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Consecutive transient failures that trip the breaker
	ConsecutiveFailures uint32 `json:"consecutiveFailures" yaml:"consecutiveFailures"`
}

// RateLimitConfig caps outbound request rate. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// SiteConfig holds the public base URL of the web front end
type SiteConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// MailerConfig defines SMTP settings. Port 465 uses implicit TLS.
type MailerConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// PubSubConfig defines Pub/Sub configuration for sync event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// TRACCAR_ADMINEMAIL -> traccar.adminEmail
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg, os.Getenv)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills zero values and honors the legacy admin credential variables.
func applyDefaults(cfg *Config, getenv func(string) string) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Traccar == nil {
		cfg.Traccar = &TraccarConfig{}
	}
	tc := cfg.Traccar
	if strings.TrimSpace(tc.BaseURL) == "" {
		tc.BaseURL = defaultTraccarBaseURL
	}
	tc.BaseURL = strings.TrimRight(tc.BaseURL, "/")
	if tc.Timeout <= 0 {
		tc.Timeout = defaultTraccarTimeout
	}
	if tc.SessionTTL <= 0 {
		tc.SessionTTL = defaultTraccarSessionTTL
	}
	if tc.UserAgent == "" {
		tc.UserAgent = defaultTraccarUserAgent
	}
	if tc.AdminEmail == "" {
		tc.AdminEmail = firstNonEmpty(getenv, "TRACCAR_API_USER", "TRACCAR_ADMIN_EMAIL")
	}
	if tc.AdminPassword == "" {
		tc.AdminPassword = firstNonEmpty(getenv, "TRACCAR_API_PASSWORD", "TRACCAR_ADMIN_PASSWORD")
	}
	if tc.Breaker.MaxRequests == 0 {
		tc.Breaker.MaxRequests = defaultBreakerMaxRequests
	}
	if tc.Breaker.Interval <= 0 {
		tc.Breaker.Interval = defaultBreakerInterval
	}
	if tc.Breaker.Timeout <= 0 {
		tc.Breaker.Timeout = defaultBreakerTimeout
	}
	if tc.Breaker.ConsecutiveFailures == 0 {
		tc.Breaker.ConsecutiveFailures = defaultBreakerConsecutiveFailures
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTTL <= 0 {
		cfg.Auth.AccessTTL = defaultAccessTTL
	}
	if cfg.Auth.RefreshTTL <= 0 {
		cfg.Auth.RefreshTTL = defaultRefreshTTL
	}
	if cfg.Auth.RecoveryTTL <= 0 {
		cfg.Auth.RecoveryTTL = defaultRecoveryTTL
	}
	if cfg.Auth.PasswordMinLength <= 0 {
		cfg.Auth.PasswordMinLength = defaultPasswordMinLength
	}
}

func firstNonEmpty(getenv func(string) string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
	}

	return ""
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
