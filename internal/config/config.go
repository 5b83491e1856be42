// Package config loads perfwheel settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv        string
	LogLevel      string
	Questionnaire string
	Addr          string
	OpenBrowser   bool
}

// Load reads the given .env files (missing files are ignored) and then the environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) *Config {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	open, err := strconv.ParseBool(getEnv("PERFWHEEL_OPEN_BROWSER", "true"))
	if err != nil {
		open = true
	}

	return &Config{
		AppEnv:        getEnv("PERFWHEEL_ENV", "development"),
		LogLevel:      getEnv("PERFWHEEL_LOG_LEVEL", "info"),
		Questionnaire: getEnv("PERFWHEEL_QUESTIONNAIRE", "commercial"),
		Addr:          getEnv("PERFWHEEL_ADDR", "127.0.0.1:8080"),
		OpenBrowser:   open,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
