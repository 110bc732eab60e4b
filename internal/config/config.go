package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port            string
	DBPath          string
	CSVPath         string
	GeocodingAPIKey string
	AppBaseURL      string // public page URL rendered as a QR code; empty disables the endpoint
	JWTSecret       string
	DefaultZoom     int
	GeocodeTimeout  time.Duration
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", ":8080"),
		DBPath:          getEnv("DB_PATH", "./data/eatmap.db"),
		CSVPath:         getEnv("CSV_PATH", "./places.csv"),
		GeocodingAPIKey: getEnv("GEOCODING_API_KEY", ""),
		AppBaseURL:      getEnv("APP_BASE_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		DefaultZoom:     getEnvInt("DEFAULT_ZOOM", 17),
		GeocodeTimeout:  time.Duration(getEnvInt("GEOCODE_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
