// Package config loads the client configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path"
	"time"

	env "github.com/Netflix/go-env"
)

// Config for the newsdesk client and CLI.
//
// REQUEST_TIMEOUT=0 disables the HTTP timeout entirely - only set this when
// strict compatibility with the legacy admin front-end matters (it never
// configured one).
type Config struct {
	Environment    string        `env:"ENVIRONMENT,default=dev"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	APIBaseURL     string        `env:"API_BASE_URL,default=https://bbc-newsbackend-2yyf.onrender.com/"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=10s"`
	SessionFile    string        `env:"SESSION_FILE"`
	AuthPreflight  bool          `env:"AUTH_PREFLIGHT,default=false"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"staging": true,
	"prod":    true,
}

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not resolve home directory for session file: %w", err)
		}
		cfg.SessionFile = path.Join(home, ".newsdesk", "session.db")
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("request timeout cannot be negative, got %v", cfg.RequestTimeout)
	}

	return nil
}
