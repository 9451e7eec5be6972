// Package config provides configuration loading and validation for the service.
package config

import (
	"os"
	"regexp"
	"time"

	"github.com/jonathan/jobgen/internal/types"
)

const (
	defaultEndpoint = "https://api.deepseek.com/v1/chat/completions"
	defaultModel    = "deepseek-chat"
	defaultTimeout  = 30 * time.Second

	minAPIKeyLength = 10
)

// apiKeyPattern is the allowed credential charset.
var apiKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Config holds process-wide configuration. It is constructed once at startup
// and passed by reference into the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	APIKey      string
	APIEndpoint string
	Model       string
	Timeout     time.Duration
}

// Load reads configuration from the environment and validates the credential.
// The process must refuse to serve on a missing or malformed key.
func Load() (*Config, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if err := ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}

	return &Config{
		APIKey:      apiKey,
		APIEndpoint: getEnvString("DEEPSEEK_API_ENDPOINT", defaultEndpoint),
		Model:       getEnvString("DEEPSEEK_MODEL", defaultModel),
		Timeout:     defaultTimeout,
	}, nil
}

// ValidateAPIKey checks the credential against the format rule: minimum
// length and restricted charset. The key value itself is never logged.
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return &types.SecurityError{Message: "DEEPSEEK_API_KEY environment variable is required"}
	}
	if len(apiKey) < minAPIKeyLength || !apiKeyPattern.MatchString(apiKey) {
		return &types.SecurityError{Message: "invalid API key format"}
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
