package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// SMHIBaseURL overrides the upstream endpoint, mainly for tests.
	SMHIBaseURL string

	// HTTPTimeout bounds outbound calls to SMHI.
	HTTPTimeout time.Duration

	// WatchInterval controls how often the approved-time watcher polls.
	WatchInterval time.Duration

	// DefaultLon/DefaultLat are used when a request carries no coordinates.
	DefaultLon float64
	DefaultLat float64

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.SMHIBaseURL = os.Getenv("SMHI_BASE_URL")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// SMHI publishes new runs roughly hourly; polling every 15 minutes is plenty.
	intervalStr := getenvDefault("WATCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WATCH_INTERVAL: %w", err)
	}
	cfg.WatchInterval = interval

	// Default point: Stockholm.
	cfg.DefaultLon, err = getenvFloat("DEFAULT_LON", 18.0686)
	if err != nil {
		return nil, err
	}
	cfg.DefaultLat, err = getenvFloat("DEFAULT_LAT", 59.3293)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultLon < -180 || cfg.DefaultLon > 180 {
		return nil, fmt.Errorf("DEFAULT_LON out of bounds: %f", cfg.DefaultLon)
	}
	if cfg.DefaultLat < -90 || cfg.DefaultLat > 90 {
		return nil, fmt.Errorf("DEFAULT_LAT out of bounds: %f", cfg.DefaultLat)
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
