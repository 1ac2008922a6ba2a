// Package weather implements the two tool operations: current conditions
// for a place and a multi-day forecast for a coordinate pair.
//
// Both operations always return text. Provider failures of any kind are
// logged and turned into a fixed apology sentence naming the input.
package weather

import (
	"context"
	"fmt"
	"time"

	"weather-mcp/datasource"
	"weather-mcp/logging"
	"weather-mcp/models"
	"weather-mcp/report"
)

// Service answers weather questions using a provider
type Service struct {
	provider datasource.Provider
	location *time.Location
	logger   logging.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLocation sets the zone used for dates and clock times
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithLogger sets the service logger
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		s.logger = logging.OrDefault(logger)
	}
}

// NewService creates a new weather service
func NewService(provider datasource.Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		location: time.Local,
		logger:   logging.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentConditions returns a current weather report for city, qualified by
// countryCode when it is not empty.
func (s *Service) CurrentConditions(ctx context.Context, city, countryCode string) string {
	place := models.Place{City: city, CountryCode: countryCode}

	current, err := s.provider.CurrentWeather(ctx, place)
	if err != nil {
		s.logger.Infof("current conditions for %q unavailable (%s)", place.String(), datasource.Kind(err))
		return fmt.Sprintf("Unable to fetch data for location: %s", place)
	}

	return report.RenderCurrent(place.String(), current, s.location)
}

// Forecast returns a day-by-day forecast report for the coordinates
func (s *Service) Forecast(ctx context.Context, latitude, longitude float64) string {
	coords := models.Coordinates{Latitude: latitude, Longitude: longitude}

	forecast, err := s.provider.Forecast(ctx, coords)
	if err != nil {
		s.logger.Infof("forecast for %s unavailable (%s)", coords, datasource.Kind(err))
		return fmt.Sprintf("Unable to fetch forecast data for location at coordinates: %s", coords)
	}

	return report.RenderForecast(forecast, s.location)
}
