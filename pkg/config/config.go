package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: every environment variable is read here and nowhere else
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External sources
	Calendar CalendarConfig
	Yahoo    YahooConfig

	// Macro pipeline
	Macro MacroConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// CalendarConfig holds economic-calendar source configuration
type CalendarConfig struct {
	// Mode selects the fetch topology: "html" scrapes one page per
	// region, "json" hits a single endpoint serving all regions.
	Mode    string
	BaseURL string // html mode: region paths are appended to this
	JSONURL string // json mode: single endpoint for all regions
	Timeout time.Duration
}

// YahooConfig holds the price-history source configuration
type YahooConfig struct {
	BaseURL string
	Timeout time.Duration
}

// MacroConfig holds macro snapshot cache configuration
type MacroConfig struct {
	SnapshotTTL time.Duration
	PriceTTL    time.Duration
}

// Load reads configuration from environment variables
// ⭐ SSOT: only this function calls os.Getenv()
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		Calendar: CalendarConfig{
			Mode:    getEnv("CALENDAR_MODE", "html"),
			BaseURL: getEnv("CALENDAR_BASE_URL", "https://m.investing.com/economic-calendar"),
			JSONURL: getEnv("CALENDAR_JSON_URL", ""),
			Timeout: getEnvAsDuration("CALENDAR_TIMEOUT", "6s"),
		},

		Yahoo: YahooConfig{
			BaseURL: getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout: getEnvAsDuration("YAHOO_TIMEOUT", "8s"),
		},

		Macro: MacroConfig{
			SnapshotTTL: getEnvAsDuration("MACRO_SNAPSHOT_TTL", "12h"),
			PriceTTL:    getEnvAsDuration("PRICE_TTL", "1h"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Calendar.Mode != "html" && c.Calendar.Mode != "json" {
		return fmt.Errorf("CALENDAR_MODE must be one of: html, json")
	}

	if c.Calendar.Mode == "json" && c.Calendar.JSONURL == "" {
		return fmt.Errorf("CALENDAR_JSON_URL is required when CALENDAR_MODE=json")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
