package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the scraper.
type Config struct {
	NumPlayers     int
	ResultsPerPage int // fixed by the Yahoo! draft analysis page
	OutFile        string
	Headless       bool
	Debug          bool
	UserAgent      string

	// Timing
	PageDelay     time.Duration
	PageTimeout   time.Duration
	GlobalTimeout time.Duration

	// PostgreSQL
	DBEnabled  bool
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		NumPlayers:     350,
		ResultsPerPage: 50,
		OutFile:        "stats.csv",
		Headless:       true,
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",

		PageDelay:     1500 * time.Millisecond,
		PageTimeout:   30 * time.Second,
		GlobalTimeout: 15 * time.Minute,

		DBEnabled:  getEnvBool("DB_ENABLED", false),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "ffav"),
		DBPassword: getEnv("DB_PASSWORD", "ffav"),
		DBName:     getEnv("DB_NAME", "ff_auction_values"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
