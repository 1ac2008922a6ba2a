package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"weather-mcp/logging"
)

const maxErrorMessage = 200

// Client performs authenticated GET requests against the OpenWeatherMap API.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
	tracer     trace.Tracer
	requests   metric.Int64Counter
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the sink for diagnostic lines
func WithLogger(logger logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logging.OrDefault(logger)
	}
}

// NewClient creates a new client. The HTTP timeout bounds every call.
func NewClient(apiKey, baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:   logging.Default,
		tracer:   newTracer(),
		requests: newRequestCounter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a client from a validated configuration
func NewClientFromConfig(config *Config, opts ...ClientOption) *Client {
	return NewClient(config.APIKey, config.BaseURL, config.Timeout, opts...)
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Execute sends GET <baseURL>/<endpoint> with params, units=metric unless
// params sets units, and the credential, then decodes the JSON body into out.
//
// Any failure is returned as one of the error kinds in errors.go and logged
// once. The credential never appears in errors or log lines.
func (c *Client) Execute(ctx context.Context, endpoint string, params url.Values, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "openweathermap."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String(attrEndpoint, endpoint)),
	)
	defer func() {
		outcome := Kind(err)
		c.requests.Add(ctx, 1, metric.WithAttributes(
			attribute.String(attrEndpoint, endpoint),
			attribute.String(attrOutcome, outcome),
		))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
			c.logger.Warnf("weather request to %s failed (%s): %v", endpoint, outcome, err)
		}
		span.End()
	}()

	reqURL, err := c.buildURL(endpoint, params)
	if err != nil {
		return fmt.Errorf("%w: failed to build URL: %v", ErrInvalidRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Operation: "GET " + endpoint, Err: c.redact(endpoint, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Operation: "read " + endpoint, Err: c.redact(endpoint, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(resp.StatusCode, body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// buildURL constructs the API URL. The caller's params are not modified.
func (c *Client) buildURL(endpoint string, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(endpoint, "/")

	query := make(url.Values, len(params)+2)
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	if query.Get("units") == "" {
		query.Set("units", "metric")
	}
	query.Set("appid", c.apiKey)

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// redact strips the query string, and with it the credential, from
// transport errors.
func (c *Client) redact(endpoint string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.TrimSuffix(c.baseURL, "/") + "/" + endpoint
	}
	return err
}

// providerMessage extracts the "message" field of an error body, falling back
// to the raw body or the status text.
func providerMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return http.StatusText(status)
	}
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage] + "..."
	}
	return msg
}
