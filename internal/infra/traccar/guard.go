package traccar

import (
	"context"
	"log/slog"

	"trackio/config"
	"trackio/internal/domain/service"
	"trackio/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// errRequestTimeout is the cause attached to the client's own request deadline.
var errRequestTimeout = errors.New("traccar request timeout")

// callerAbort marks a failure of a request the caller gave up on.
type callerAbort struct {
	err error
}

func (a *callerAbort) Error() string {
	return a.err.Error()
}

func (a *callerAbort) Unwrap() error {
	return a.err
}

// callerGaveUp reports whether ctx ended for a reason other than the client's own timeout.
func callerGaveUp(ctx context.Context) bool {
	return ctx.Err() != nil && !errors.Is(context.Cause(ctx), errRequestTimeout)
}

// guard fronts every request with an optional rate limiter and a circuit breaker.
// Only transient failures count against the breaker. A 4xx answer proves the
// service is up and keeps the circuit closed. Requests abandoned by the caller
// are not counted at all.
type guard struct {
	breaker *gobreaker.CircuitBreaker[*Response]
	limiter *rate.Limiter
}

func newGuard(name string, bc config.BreakerConfig, rl config.RateLimitConfig, logger *slog.Logger) *guard {
	failures := bc.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, service.ErrTrackingTransient)
		},
		IsExcluded: func(err error) bool {
			var abort *callerAbort

			return errors.As(err, &abort)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("[Traccar] Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	}
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))

	g := &guard{breaker: gobreaker.NewCircuitBreaker[*Response](settings)}
	if rl.RequestsPerSecond > 0 {
		burst := rl.Burst
		if burst <= 0 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), burst)
	}

	return g
}

func (g *guard) execute(ctx context.Context, method, endpoint string, fn func() (*Response, error)) (*Response, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{Method: method, Endpoint: endpoint, Err: errors.Wrap(err, "rate limiter")}
		}
	}

	resp, err := g.breaker.Execute(func() (*Response, error) {
		resp, err := fn()
		if err != nil && callerGaveUp(ctx) {
			return resp, &callerAbort{err: err}
		}

		return resp, err
	})
	var abort *callerAbort
	if errors.As(err, &abort) {
		return resp, abort.err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &NetworkError{Method: method, Endpoint: endpoint, Err: err}
	}

	return resp, err
}

// state exposes the breaker state for tests.
func (g *guard) state() gobreaker.State {
	return g.breaker.State()
}
