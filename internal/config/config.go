package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// BuildAPIKey is the weatherapi.com key baked in at build time:
//
//	go build -ldflags "-X github.com/i474232898/weather-now/internal/config.BuildAPIKey=..."
//
// WEATHERAPI_API_KEY overrides it.
var BuildAPIKey string

const (
	defaultBaseURL      = "https://api.weatherapi.com/v1"
	defaultForecastDays = 3
	maxForecastDays     = 14
)

type AppConfig struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	ForecastDays      int

	// CircuitBreaker enables fail-fast on repeated upstream failures.
	CircuitBreaker bool

	// HTTPTimeout bounds outbound calls; 0 keeps the transport default (none).
	HTTPTimeout time.Duration

	// RefreshInterval re-requests the last location periodically; 0 disables it.
	RefreshInterval time.Duration

	Port           string
	LogDevelopment bool

	// DotEnvLoaded reports whether a .env file was found and applied.
	DotEnvLoaded bool
}

// Load reads configuration from the environment (and an optional .env file).
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	cfg.DotEnvLoaded = godotenv.Load() == nil

	cfg.WeatherAPIKey = getenvDefault("WEATHERAPI_API_KEY", BuildAPIKey)
	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("WEATHERAPI_API_KEY is not set and no key was built in")
	}
	cfg.WeatherAPIBaseURL = getenvDefault("WEATHERAPI_BASE_URL", defaultBaseURL)

	cfg.ForecastDays = getenvInt("WEATHERAPI_FORECAST_DAYS", defaultForecastDays)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > maxForecastDays {
		return nil, fmt.Errorf("invalid WEATHERAPI_FORECAST_DAYS: %d (must be 1-%d)", cfg.ForecastDays, maxForecastDays)
	}

	breaker, err := getenvBool("WEATHERAPI_CIRCUIT_BREAKER", false)
	if err != nil {
		return nil, err
	}
	cfg.CircuitBreaker = breaker

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.Port = getenvDefault("PORT", "8080")

	dev, err := getenvBool("LOG_DEVELOPMENT", false)
	if err != nil {
		return nil, err
	}
	cfg.LogDevelopment = dev

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
