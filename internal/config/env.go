package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

const (
	// port used when PORT is unset or unusable
	DefaultPort = 3000

	maxPort = 65535
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - most environments won't have a .env file
	}

	environment := os.Getenv("ENVIRONMENT")
	rateLimit := strings.TrimSpace(os.Getenv("RATE_LIMIT"))

	if environment == "" {
		environment = "development"
	}

	if rateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(rateLimit); err != nil {
			return nil, fmt.Errorf("RATE_LIMIT %q is invalid: %w", rateLimit, err)
		}
	}

	return &Config{
		Port:               ParsePort(os.Getenv("PORT")),
		Environment:        environment,
		CORSAllowedOrigins: parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RateLimit:          rateLimit,
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
	}, nil
}

// parses a PORT value, falling back to DefaultPort when it is empty,
// not a number or outside 0-65535
func ParsePort(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort
	}

	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 || port > maxPort {
		return DefaultPort
	}

	return port
}

// returns the listen address for the configured port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// splits a comma separated origin list, nil means allow all
func parseOrigins(raw string) []string {
	origins := parseList(raw)

	for _, origin := range origins {
		if origin == "*" {
			return nil
		}
	}

	return origins
}

// splits a comma separated list, dropping blanks
func parseList(raw string) []string {
	var items []string

	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
