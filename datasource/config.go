package datasource

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by LoadConfig
const (
	EnvAPIKey      = "OPENWEATHER_API_KEY"
	EnvBaseURL     = "OPENWEATHER_BASE_URL"
	EnvTimeout     = "WEATHER_HTTP_TIMEOUT"
	EnvMaxAttempts = "WEATHER_MAX_ATTEMPTS"
	EnvTimezone    = "WEATHER_TIMEZONE"
	EnvLogLevel    = "LOG_LEVEL"
)

// Defaults
const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultTimeout = 30 * time.Second
)

// ErrMissingAPIKey is returned when no credential is configured
var ErrMissingAPIKey = errors.New(EnvAPIKey + " is not set")

// Config represents the application configuration
type Config struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	Location    *time.Location // zone used to derive calendar dates and clock times
	LogLevel    string
}

// fileConfig is the on-disk JSON shape
type fileConfig struct {
	APIKey      string `json:"apiKey"`
	BaseURL     string `json:"baseURL"`
	Timeout     string `json:"timeout"` // Go duration, e.g. "30s"
	MaxAttempts int    `json:"maxAttempts"`
	Timezone    string `json:"timezone"` // IANA name
	LogLevel    string `json:"logLevel"`
}

// DefaultConfig creates a default configuration without a credential
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     DefaultTimeout,
		MaxAttempts: 1,
		Location:    time.Local,
		LogLevel:    "info",
	}
}

// LoadConfig builds the configuration from defaults, the optional JSON file
// and the environment, in that order. A missing file is not an error; a
// missing API key is.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if filename != "" {
		if err := config.loadFile(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", filename, err)
		}
	}

	if err := config.loadEnv(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) loadFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var fc fileConfig
	if err := json.NewDecoder(file).Decode(&fc); err != nil {
		return err
	}

	return c.apply(fc)
}

func (c *Config) loadEnv() error {
	fc := fileConfig{
		APIKey:   os.Getenv(EnvAPIKey),
		BaseURL:  os.Getenv(EnvBaseURL),
		Timeout:  os.Getenv(EnvTimeout),
		Timezone: os.Getenv(EnvTimezone),
		LogLevel: os.Getenv(EnvLogLevel),
	}
	if raw := os.Getenv(EnvMaxAttempts); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxAttempts, raw, err)
		}
		fc.MaxAttempts = n
	}
	return c.apply(fc)
}

// apply overrides every field that is set in fc
func (c *Config) apply(fc fileConfig) error {
	if fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		c.Timeout = d
	}
	if fc.MaxAttempts != 0 {
		c.MaxAttempts = fc.MaxAttempts
	}
	if fc.Timezone != "" {
		loc, err := time.LoadLocation(fc.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", fc.Timezone, err)
		}
		c.Location = loc
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	return nil
}

// Validate checks that the configuration can be used
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		return errors.New("base URL is empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	return nil
}
