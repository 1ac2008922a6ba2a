package datasource

import (
	"context"
	"net/url"

	"weather-mcp/models"
)

// Endpoints of the OpenWeatherMap 2.5 API
const (
	EndpointWeather  = "weather"
	EndpointForecast = "forecast"
)

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	client *Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(client *Client) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		client: client,
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// CurrentWeather fetches current weather for a place
func (p *OpenWeatherMapProvider) CurrentWeather(ctx context.Context, place models.Place) (*models.CurrentWeather, error) {
	params := url.Values{}
	params.Set("q", place.String())
	params.Set("units", "metric")

	var response models.CurrentWeather
	if err := p.client.Execute(ctx, EndpointWeather, params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Forecast fetches the 5-day / 3-hour forecast for a coordinate pair
func (p *OpenWeatherMapProvider) Forecast(ctx context.Context, coords models.Coordinates) (*models.ForecastResponse, error) {
	params := url.Values{}
	params.Set("lat", models.FormatFloat(coords.Latitude))
	params.Set("lon", models.FormatFloat(coords.Longitude))
	params.Set("units", "metric")

	var response models.ForecastResponse
	if err := p.client.Execute(ctx, EndpointForecast, params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

var _ Provider = (*OpenWeatherMapProvider)(nil)
