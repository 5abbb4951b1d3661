package ledgerline

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings readable from the environment with the
// LEDGERLINE_ prefix (LEDGERLINE_BASE_URL, LEDGERLINE_HTTP_TIMEOUT,
// LEDGERLINE_DEBUG).
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"http://localhost:3000/api/v1"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"`
}

// ConfigFromEnv reads Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ledgerline", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from environment configuration.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	// Debug is not applied here: New already auto-enables the debug
	// transport when LEDGERLINE_DEBUG is set. The field exists so other
	// consumers (like the CLI) can key their own verbosity off it.
	base := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	return New(cfg.BaseURL, append(base, opts...)...), nil
}
