// Package traccar implements the tracking-service HTTP client.
package traccar

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"trackio/config"
	"trackio/internal/domain/service"

	"go.uber.org/fx"
)

const defaultTimeout = 15 * time.Second

// Client talks to the Traccar REST API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	debug      bool
	httpClient *http.Client
	guard      *guard
	logger     *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Debug     bool
	Breaker   config.BreakerConfig
	RateLimit config.RateLimitConfig

	// HTTPClient overrides the default transport, mostly for tests.
	HTTPClient *http.Client
}

// NewClient builds a Client from explicit options.
func NewClient(opts Options, logger *slog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConnsPerHost = 10
		httpClient = &http.Client{Transport: transport}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		timeout:    timeout,
		debug:      opts.Debug,
		httpClient: httpClient,
		guard:      newGuard("traccar", opts.Breaker, opts.RateLimit, logger),
		logger:     logger,
	}
}

// Params holds dependencies for the tracking client, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the tracking client from configuration.
func New(params Params) service.TrackingClient {
	cfg := params.Config.Traccar
	if cfg == nil {
		cfg = &config.TraccarConfig{}
	}

	client := NewClient(Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Debug:     cfg.Debug || params.Config.Env.Debug,
		Breaker:   cfg.Breaker,
		RateLimit: cfg.RateLimit,
	}, params.Logger)

	params.Logger.Info("Tracking client configured",
		slog.String("base_url", client.baseURL),
		slog.Duration("timeout", client.timeout),
		slog.Bool("admin_credentials", cfg.HasAdminCredentials()),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.httpClient.CloseIdleConnections()

			return nil
		},
	})

	return client
}
