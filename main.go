package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"weather-mcp/api"
	"weather-mcp/datasource"
	"weather-mcp/logging"
	"weather-mcp/weather"
)

const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

func main() {
	log := logging.Default

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	// Parse command line arguments
	configFile := flag.String("config", "config.json", "Path to configuration file")
	transport := flag.String("transport", transportStdio, "Tool transport: stdio or http")
	addr := flag.String("addr", api.DefaultAddress, "Listen address for the http transport")
	path := flag.String("path", api.DefaultPath, "MCP endpoint path for the http transport")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides "+datasource.EnvLogLevel+")")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *logLevel != "" {
		config.LogLevel = *logLevel
	}
	logging.SetLevel(config.LogLevel)

	client := datasource.NewClientFromConfig(config)
	var provider datasource.Provider = datasource.NewOpenWeatherMapProvider(client)
	if config.MaxAttempts > 1 {
		provider = datasource.NewRetryingProvider(provider, config.MaxAttempts)
	}
	log.Infof("Using %s at %s (timeout %s, attempts %d, zone %s)",
		provider.Name(), config.BaseURL, config.Timeout, config.MaxAttempts, config.Location)

	service := weather.NewService(provider, weather.WithLocation(config.Location))
	server := api.NewServer(service, api.WithAddress(*addr), api.WithPath(*path))

	switch *transport {
	case transportStdio:
		if err := server.ServeStdio(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case transportHTTP:
		serveHTTP(server, log)
	default:
		log.Fatalf("Unknown transport %q (want %s or %s)", *transport, transportStdio, transportHTTP)
	}
}

// serveHTTP runs the http transport until SIGINT or SIGTERM
func serveHTTP(server *api.Server, log logging.Logger) {
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case sig := <-shutdownChan:
		log.Infof("Shutting down due to %s signal", sig)
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Shutdown failed: %v", err)
	}
	log.Infof("Shutdown complete")
}
