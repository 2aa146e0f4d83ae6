package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"weather-dashboard/internal/domain/model"
	httpclient "weather-dashboard/pkg/http"
)

// BreakerSettings configures the circuit breaker of a provider
type BreakerSettings struct {
	// ConsecutiveFailures opens the breaker
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again
	OpenTimeout time.Duration
}

// resilientCaller bounds every call with a timeout and a circuit breaker, and
// classifies failures into the domain errors.
type resilientCaller struct {
	name    string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

func newResilientCaller(name string, timeout time.Duration, settings BreakerSettings) *resilientCaller {
	if settings.ConsecutiveFailures == 0 {
		settings.ConsecutiveFailures = 5
	}
	if settings.OpenTimeout == 0 {
		settings.OpenTimeout = 30 * time.Second
	}

	return &resilientCaller{
		name:    name,
		timeout: timeout,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     settings.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
			},
		}),
	}
}

// call runs send within the timeout. Only provider side failures (transport, timeout, 429, 5xx)
// count against the breaker; a bad payload or a 4xx does not.
func (c *resilientCaller) call(ctx context.Context, send func(ctx context.Context) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var callErr error
	_, err := c.breaker.Execute(func() (interface{}, error) {
		callErr = send(ctx)
		if isProviderFailure(callErr) {
			return nil, callErr
		}
		return nil, nil
	})

	if err != nil && !errors.Is(err, callErr) {
		// breaker open or half-open probe in flight
		return fmt.Errorf("%w: %s: %v", model.ErrUpstreamUnavailable, c.name, err)
	}
	if callErr == nil {
		return nil
	}
	if errors.Is(callErr, httpclient.ErrDecodeResponse) {
		return fmt.Errorf("%w: %s: %v", model.ErrUpstreamDataInvalid, c.name, callErr)
	}
	return fmt.Errorf("%w: %s: %v", model.ErrUpstreamUnavailable, c.name, callErr)
}

func isProviderFailure(err error) bool {
	if err == nil || errors.Is(err, httpclient.ErrDecodeResponse) {
		return false
	}
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= 500
	}
	return true
}
