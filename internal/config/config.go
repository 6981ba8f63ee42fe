package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	HRIS     HRISConfig
	Tracking TrackingConfig
	Location LocationConfig
	Device   DeviceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
	Port     int
	Timezone string
}

// HRISConfig points at the attendance backend
type HRISConfig struct {
	BaseURL    string
	Token      string
	EmployeeID string
}

// TrackingConfig configures the fleet location reporting loop
type TrackingConfig struct {
	Endpoint string
	Key      string
	Interval time.Duration
}

type LocationConfig struct {
	DefaultRadiusMeters float64

	// Fixed terminal coordinates, used when the agent runs on a
	// wall-mounted punch terminal instead of a phone.
	StaticLatitude  float64
	StaticLongitude float64
}

// DeviceConfig describes this install in tracking payloads
type DeviceConfig struct {
	Platform string
	Version  string
	DeviceID string
}

func Load() (*Config, error) {
	// .env is optional: production installs configure through the
	// environment directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8089"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     appPort,
		Timezone: getEnv("APP_TIMEZONE", "Asia/Kolkata"),
	}

	config.HRIS = HRISConfig{
		BaseURL:    getEnv("HRIS_BASE_URL", ""),
		Token:      getEnv("HRIS_TOKEN", ""),
		EmployeeID: getEnv("HRIS_EMPLOYEE_ID", ""),
	}

	trackingInterval, err := time.ParseDuration(getEnv("TRACKING_INTERVAL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRACKING_INTERVAL: %w", err)
	}
	config.Tracking = TrackingConfig{
		Endpoint: getEnv("TRACKING_ENDPOINT", ""),
		Key:      getEnv("TRACKING_KEY", ""),
		Interval: trackingInterval,
	}

	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_METERS", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_METERS: %w", err)
	}
	staticLat, err := strconv.ParseFloat(getEnv("DEVICE_LAT", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_LAT: %w", err)
	}
	staticLon, err := strconv.ParseFloat(getEnv("DEVICE_LON", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_LON: %w", err)
	}
	config.Location = LocationConfig{
		DefaultRadiusMeters: radius,
		StaticLatitude:      staticLat,
		StaticLongitude:     staticLon,
	}

	config.Device = DeviceConfig{
		Platform: getEnv("DEVICE_PLATFORM", "android"),
		Version:  getEnv("DEVICE_VERSION", "unknown"),
		// A fresh random ID per process when none is configured; the
		// tracking backend only needs it to be stable within a run.
		DeviceID: getEnv("DEVICE_ID", uuid.NewString()),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.HRIS.BaseURL == "" {
		return fmt.Errorf("HRIS_BASE_URL is required")
	}
	if c.HRIS.EmployeeID == "" {
		return fmt.Errorf("HRIS_EMPLOYEE_ID is required")
	}
	if c.Tracking.Endpoint != "" && c.Tracking.Key == "" {
		return fmt.Errorf("TRACKING_KEY is required when TRACKING_ENDPOINT is set")
	}
	if c.Location.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must be positive")
	}
	return nil
}

// Timezone resolves the configured IANA zone, falling back to UTC.
func (c *Config) Timezone() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
