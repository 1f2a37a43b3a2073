package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/nutriplan/nutriplan-client/internal/session"
)

// Config holds environment-driven client settings, prefix NUTRIPLAN.
type Config struct {
	// APIURL is the backend base URL (NUTRIPLAN_API_URL).
	APIURL string `envconfig:"API_URL" default:"http://localhost:2022"`
	// HTTPTimeout bounds each request (NUTRIPLAN_HTTP_TIMEOUT).
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	// Debug enables HTTP traffic dumping (NUTRIPLAN_DEBUG).
	Debug bool `envconfig:"DEBUG"`
	// SessionFile overrides the session store location
	// (NUTRIPLAN_SESSION_FILE). Empty means the per-user default.
	SessionFile string `envconfig:"SESSION_FILE"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("nutriplan", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv builds a Client from environment configuration. Explicit
// options are applied after the environment-derived ones and win on
// conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.NewClient(opts...)
}

// NewClient builds a Client from this Config.
func (cfg Config) NewClient(opts ...Option) (*Client, error) {
	var envOpts []Option
	if cfg.HTTPTimeout > 0 {
		envOpts = append(envOpts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Debug {
		envOpts = append(envOpts, WithDebugLogging(true))
	}
	if cfg.SessionFile != "" {
		envOpts = append(envOpts, WithSessionStore(session.NewFileStore(cfg.SessionFile)))
	}
	return New(cfg.APIURL, append(envOpts, opts...)...)
}
