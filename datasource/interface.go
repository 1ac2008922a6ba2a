package datasource

import (
	"context"

	"weather-mcp/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// CurrentWeather fetches current conditions for a place
	CurrentWeather(ctx context.Context, place models.Place) (*models.CurrentWeather, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// Forecast fetches the multi-day forecast series for a coordinate pair
	Forecast(ctx context.Context, coords models.Coordinates) (*models.ForecastResponse, error)

	// Name returns the source's name
	Name() string
}

// Provider implements both interfaces
type Provider interface {
	WeatherProvider
	ForecastSource
}
