package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the HTTP server settings, sourced from the environment.
type Config struct {
	Host     string
	Port     int
	LogLevel string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present in the working directory.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	port, err := getEnvInt("QCALC_PORT", 8080)
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:     getEnvString("QCALC_HOST", "localhost"),
		Port:     port,
		LogLevel: getEnvString("QCALC_LOG_LEVEL", "INFO"),
	}, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}
