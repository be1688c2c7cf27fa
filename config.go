package deepl

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-driven client settings. All variables
// carry the DEEPL_ prefix.
type Config struct {
	// APIKey is the account API key (DEEPL_API_KEY). Required.
	APIKey string `envconfig:"API_KEY" required:"true"`
	// FreeTier routes requests to the free-plan host (DEEPL_FREE_TIER).
	FreeTier bool `envconfig:"FREE_TIER" default:"false"`
	// HTTPTimeout bounds a single request end to end (DEEPL_HTTP_TIMEOUT).
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// FromEnv populates a Config from DEEPL_* environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("deepl", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from DEEPL_* environment variables.
// Explicit options are applied after the environment-derived ones and
// take precedence.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithHTTPTimeout(cfg.HTTPTimeout)}, opts...)
	return New(cfg.APIKey, cfg.FreeTier, opts...)
}
