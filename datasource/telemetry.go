package datasource

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "weather-mcp/datasource"

	metricRequests = "weather.provider.requests"

	attrEndpoint = "endpoint"
	attrOutcome  = "outcome"
)

// newTracer returns the tracer for provider calls. It follows the global
// provider, which is a no-op until an SDK is installed.
func newTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// newRequestCounter returns the per-call counter, falling back to a no-op
// instrument if the meter rejects it.
func newRequestCounter() metric.Int64Counter {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		metricRequests,
		metric.WithDescription("Total number of weather provider requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return noop.Int64Counter{}
	}
	return counter
}
