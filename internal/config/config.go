// Package config provides environment-driven configuration for the cover letter service.
package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrMissingRequired indicates a required configuration value is absent.
var ErrMissingRequired = errors.New("missing required configuration")

// Config holds all process-wide settings. It is read once at startup and
// treated as read-only for the lifetime of the process.
type Config struct {
	// Credentials
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	ProfileAPIKey string `envconfig:"PROFILE_API_KEY"`
	SearchAPIKey  string `envconfig:"SEARCH_API_KEY"`

	// External endpoints
	ProfileAPIURL string `envconfig:"PROFILE_API_URL" default:"https://nubela.co/proxycurl/api/v2/linkedin"`
	SearchAPIURL  string `envconfig:"SEARCH_API_URL"`

	// Server
	ServerPort int `envconfig:"SERVER_PORT" default:"8080"`

	// Logging: when set, logs are emitted as structured JSON for the cloud
	// logging sink; otherwise a plain text handler is used.
	GCPProject string `envconfig:"GCP_PROJECT"`

	// Extraction
	CandidateTextLimit int  `envconfig:"CANDIDATE_TEXT_LIMIT" default:"1500"`
	TargetTextLimit    int  `envconfig:"TARGET_TEXT_LIMIT" default:"3500"`
	UseBrowser         bool `envconfig:"USE_BROWSER" default:"false"`

	// Generation
	MaxOutputTokens int32 `envconfig:"MAX_OUTPUT_TOKENS" default:"4000"`
}

// Load reads configuration from the environment, honoring a local .env file
// if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingRequired)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("config error: SERVER_PORT must be a valid port, got %d", c.ServerPort)
	}
	if c.CandidateTextLimit <= 0 {
		return fmt.Errorf("config error: CANDIDATE_TEXT_LIMIT must be positive")
	}
	if c.TargetTextLimit <= 0 {
		return fmt.Errorf("config error: TARGET_TEXT_LIMIT must be positive")
	}
	if c.MaxOutputTokens <= 0 {
		return fmt.Errorf("config error: MAX_OUTPUT_TOKENS must be positive")
	}
	return nil
}
