package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the server cannot run without is set.
// The AI API key is deliberately validated here, at startup, so a missing key
// halts the process before any request is served rather than failing on the
// first plan-generation call.
func ValidateConfig(cfg *Config) error {
	var failures []ValidationError

	if cfg.ServerPort == "" {
		failures = append(failures, ValidationError{Field: "SERVER_PORT", Message: "must not be empty"})
	}
	if cfg.DBPath == "" {
		failures = append(failures, ValidationError{Field: "DB_PATH", Message: "must not be empty"})
	}
	if cfg.JWTSecret == "" {
		failures = append(failures, ValidationError{Field: "JWT_SECRET", Message: "required environment variable is not set"})
	}
	if cfg.AIAPIKey == "" {
		failures = append(failures, ValidationError{Field: "AI_API_KEY", Message: "required environment variable is not set"})
	}

	if len(failures) > 0 {
		messages := make([]string, len(failures))
		for i, f := range failures {
			messages[i] = f.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(messages, "\n"))
	}

	return nil
}
