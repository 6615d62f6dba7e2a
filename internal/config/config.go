package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Get returns the environment value for key, or fallback when it is unset
// or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for positive integers.
func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s=%q: must be a positive integer", key, v)
	}
	return n, nil
}

// Config holds the settings shared by the server, the evaluator and dbtool.
type Config struct {
	DataDir     string
	DBPath      string
	DatabaseURL string
	Dataset     string
	Port        string
	LogLevel    string
	LogFormat   string
	Workers     int
}

// Load reads Config from the environment. Call godotenv.Load first to pick
// up a .env file.
func Load() (Config, error) {
	workers, err := GetInt("WORKERS", 4)
	if err != nil {
		return Config{}, err
	}

	return Config{
		DataDir:     Get("DATA_DIR", "data"),
		DBPath:      Get("DB_PATH", ""),
		DatabaseURL: Get("DATABASE_URL", ""),
		Dataset:     Get("DATASET", "default"),
		Port:        Get("PORT", "8080"),
		LogLevel:    Get("LOG_LEVEL", "info"),
		LogFormat:   Get("LOG_FORMAT", "text"),
		Workers:     workers,
	}, nil
}
