// Command weather-cli runs one weather tool call and prints the report.
//
//	weather-cli -city London -country GB
//	weather-cli -lat 51.5085 -lon -0.1257
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"weather-mcp/datasource"
	"weather-mcp/logging"
	"weather-mcp/weather"
)

func main() {
	_ = godotenv.Load()

	configFile := flag.String("config", "config.json", "Path to configuration file")
	city := flag.String("city", "", "City name for current conditions")
	country := flag.String("country", "", "Optional ISO 3166 country code")
	lat := flag.Float64("lat", 0, "Latitude for the forecast")
	lon := flag.Float64("lon", 0, "Longitude for the forecast")
	flag.Parse()

	latSet, lonSet := false, false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			latSet = true
		case "lon":
			lonSet = true
		}
	})

	if *city == "" && !(latSet && lonSet) {
		fmt.Fprintln(os.Stderr, "usage: weather-cli -city NAME [-country CC] | -lat LAT -lon LON")
		os.Exit(2)
	}

	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logging.SetLevel(config.LogLevel)

	var provider datasource.Provider = datasource.NewOpenWeatherMapProvider(datasource.NewClientFromConfig(config))
	if config.MaxAttempts > 1 {
		provider = datasource.NewRetryingProvider(provider, config.MaxAttempts)
	}
	service := weather.NewService(provider, weather.WithLocation(config.Location))

	ctx := context.Background()
	if *city != "" {
		fmt.Println(service.CurrentConditions(ctx, *city, *country))
	}
	if latSet && lonSet {
		fmt.Println(service.Forecast(ctx, *lat, *lon))
	}
}
