package datasource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"weather-mcp/models"
)

// RetryingProvider wraps a Provider and retries transient failures
// (ErrUnavailable, ErrRateLimited) with exponential backoff. Other error
// kinds are returned after the first attempt.
type RetryingProvider struct {
	provider    Provider
	maxAttempts uint
	newBackOff  func() backoff.BackOff
	name        string
}

// RetryOption configures a RetryingProvider
type RetryOption func(*RetryingProvider)

// WithBackOff replaces the exponential backoff policy
func WithBackOff(newBackOff func() backoff.BackOff) RetryOption {
	return func(r *RetryingProvider) {
		r.newBackOff = newBackOff
	}
}

// NewRetryingProvider creates a provider making at most maxAttempts calls per
// operation. maxAttempts below 1 is treated as 1.
func NewRetryingProvider(provider Provider, maxAttempts int, opts ...RetryOption) *RetryingProvider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	r := &RetryingProvider{
		provider:    provider,
		maxAttempts: uint(maxAttempts),
		newBackOff:  defaultBackOff,
		name:        fmt.Sprintf("%s [Retrying]", provider.Name()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	return b
}

// Name returns the provider name
func (r *RetryingProvider) Name() string {
	return r.name
}

// CurrentWeather implements WeatherProvider with retries
func (r *RetryingProvider) CurrentWeather(ctx context.Context, place models.Place) (*models.CurrentWeather, error) {
	return retry(ctx, r, func() (*models.CurrentWeather, error) {
		return r.provider.CurrentWeather(ctx, place)
	})
}

// Forecast implements ForecastSource with retries
func (r *RetryingProvider) Forecast(ctx context.Context, coords models.Coordinates) (*models.ForecastResponse, error) {
	return retry(ctx, r, func() (*models.ForecastResponse, error) {
		return r.provider.Forecast(ctx, coords)
	})
}

func retry[T any](ctx context.Context, r *RetryingProvider, call func() (T, error)) (T, error) {
	if r.maxAttempts == 1 {
		return call()
	}

	res, err := backoff.Retry(ctx, func() (T, error) {
		res, err := call()
		if err != nil && !Retryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	},
		backoff.WithBackOff(r.newBackOff()),
		backoff.WithMaxTries(r.maxAttempts),
	)
	if err != nil {
		return res, classify(err)
	}
	return res, nil
}

// classify keeps provider errors as they are and reports anything else the
// retry loop produced (context cancellation) as a network error.
func classify(err error) error {
	var apiErr *APIError
	var netErr *NetworkError
	switch {
	case errors.As(err, &apiErr), errors.As(err, &netErr),
		errors.Is(err, ErrMalformed), errors.Is(err, ErrInvalidRequest):
		return err
	default:
		return &NetworkError{Operation: "retry", Err: err}
	}
}

var _ Provider = (*RetryingProvider)(nil)
