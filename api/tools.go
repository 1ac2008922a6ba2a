package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

// Tool names
const (
	ToolGetAlerts         = "get_alerts"
	ToolGetCurrentWeather = "get_current_weather"
	ToolGetForecast       = "get_forecast"
)

// Argument names
const (
	argCity        = "city"
	argCountryCode = "country_code"
	argLatitude    = "latitude"
	argLongitude   = "longitude"
)

// toolEntry pairs a tool definition with its handler. The handler field is
// an unnamed func type so it stays assignable to the framework's handler type.
type toolEntry struct {
	tool    *mcp.Tool
	handler func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// tools lists every tool the server registers. get_current_weather is the
// descriptive name for get_alerts; both share one handler.
func (s *Server) tools() []toolEntry {
	return []toolEntry{
		{currentWeatherTool(ToolGetAlerts, "Get weather alerts for any location worldwide. "+
			"Returns the current conditions for the city as text."), s.handleCurrentWeather},
		{currentWeatherTool(ToolGetCurrentWeather, "Get the current weather for any location worldwide."), s.handleCurrentWeather},
		{mcp.NewTool(ToolGetForecast,
			mcp.WithDescription("Get a 5-day weather forecast for any location worldwide, grouped by day."),
			mcp.WithNumber(argLatitude, mcp.Required(), mcp.Description("Latitude of the location")),
			mcp.WithNumber(argLongitude, mcp.Required(), mcp.Description("Longitude of the location")),
		), s.handleForecast},
	}
}

func currentWeatherTool(name, description string) *mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString(argCity, mcp.Required(), mcp.Description("City name (e.g., London, Tokyo, Berlin)")),
		mcp.WithString(argCountryCode, mcp.Description("Optional ISO 3166 country code (e.g., GB, JP, DE)")),
	)
}

func (s *Server) handleCurrentWeather(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()

	city, err := stringArg(req.Params.Arguments, argCity, true)
	if err != nil {
		s.logger.Warnf("[%s] %s rejected: %v", requestID, req.Params.Name, err)
		return nil, err
	}
	countryCode, err := stringArg(req.Params.Arguments, argCountryCode, false)
	if err != nil {
		s.logger.Warnf("[%s] %s rejected: %v", requestID, req.Params.Name, err)
		return nil, err
	}

	start := time.Now()
	text := s.service.CurrentConditions(ctx, city, countryCode)
	s.logger.Infof("[%s] %s city=%q country_code=%q answered in %s", requestID, req.Params.Name, city, countryCode, time.Since(start))

	return mcp.NewTextResult(text), nil
}

func (s *Server) handleForecast(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()

	latitude, err := numberArg(req.Params.Arguments, argLatitude)
	if err != nil {
		s.logger.Warnf("[%s] %s rejected: %v", requestID, req.Params.Name, err)
		return nil, err
	}
	longitude, err := numberArg(req.Params.Arguments, argLongitude)
	if err != nil {
		s.logger.Warnf("[%s] %s rejected: %v", requestID, req.Params.Name, err)
		return nil, err
	}

	start := time.Now()
	text := s.service.Forecast(ctx, latitude, longitude)
	s.logger.Infof("[%s] %s latitude=%v longitude=%v answered in %s", requestID, req.Params.Name, latitude, longitude, time.Since(start))

	return mcp.NewTextResult(text), nil
}
