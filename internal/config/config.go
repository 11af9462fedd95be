package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/taskmarket/taskmarket-go/internal/constants"
)

type Config struct {
	APIBaseURL  string
	AuthToken   string
	UserID      string
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment, after loading a .env
// file if one is present in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:  getEnv("TASKMARKET_API_URL", "http://localhost:8080"),
		AuthToken:   getEnv("TASKMARKET_TOKEN", ""),
		UserID:      getEnv("TASKMARKET_USER_ID", ""),
		HTTPTimeout: getDuration("TASKMARKET_HTTP_TIMEOUT", constants.DefaultHTTPTimeout),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
