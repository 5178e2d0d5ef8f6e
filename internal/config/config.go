package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds runtime settings for the itinerary viewer.
type AppConfig struct {
	Port string

	// WeatherBaseURL points at the Open-Meteo forecast endpoint; override for tests.
	WeatherBaseURL string

	// HTTPTimeout bounds the outbound HTTP client.
	HTTPTimeout time.Duration

	// WeatherFetchTimeout bounds each per-day forecast lookup. Expiry reads as
	// a service-offline result, never an error.
	WeatherFetchTimeout time.Duration

	LogLevel string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:           getenvDefault("PORT", "8080"),
		WeatherBaseURL: getenvDefault("WEATHER_BASE_URL", ""),
		LogLevel:       getenvDefault("LOG_LEVEL", "info"),
	}

	httpTimeout, err := getenvDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = httpTimeout

	fetchTimeout, err := getenvDuration("WEATHER_FETCH_TIMEOUT", 8*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_FETCH_TIMEOUT: %w", err)
	}
	cfg.WeatherFetchTimeout = fetchTimeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
