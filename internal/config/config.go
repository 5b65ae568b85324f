// Package config provides configuration management for wikihop. Values come
// from viper, which layers flags, environment variables, an optional YAML
// file and the defaults registered by SetDefaults.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonesrussell/wikihop/internal/fetcher"
	"github.com/jonesrussell/wikihop/internal/linkoracle"
	"github.com/jonesrussell/wikihop/internal/logger"
)

// ThrottleConfig selects how fetches are paced.
type ThrottleConfig struct {
	// Mode is one of "interval", "limiter" or "none".
	Mode string `mapstructure:"mode" yaml:"mode"`
}

// Config represents the application configuration.
type Config struct {
	Search   *SearchConfig   `mapstructure:"search"   yaml:"search"`
	Fetcher  *fetcher.Config `mapstructure:"fetcher"  yaml:"fetcher"`
	Throttle *ThrottleConfig `mapstructure:"throttle" yaml:"throttle"`
	Logger   *logger.Config  `mapstructure:"logger"   yaml:"logger"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("search", map[string]any{
		"start":      DefaultStart,
		"goal":       DefaultGoal,
		"rate_limit": DefaultRateLimit,
		"max_depth":  DefaultMaxDepth,
	})

	defaults := fetcher.Config{}.WithDefaults()
	v.SetDefault("fetcher", map[string]any{
		"engine":             defaults.Engine,
		"base_url":           defaults.BaseURL,
		"user_agent":         defaults.UserAgent,
		"request_timeout":    defaults.RequestTimeout.String(),
		"max_redirects":      defaults.MaxRedirects,
		"max_body_size":      defaults.MaxBodySize,
		"respect_robots_txt": false,
	})

	v.SetDefault("throttle", map[string]any{
		"mode": linkoracle.ThrottleInterval,
	})

	v.SetDefault("logger", map[string]any{
		"level":        string(logger.DefaultLevel),
		"encoding":     logger.DefaultEncoding,
		"development":  false,
		"output_paths": logger.DefaultOutputPaths,
	})
}

// Load decodes the configuration held by v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoadFailed, err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults fills sections that the source left out.
func (c *Config) setDefaults() {
	// Explicit zero values in a present section are kept so Validate sees them.
	if c.Search == nil {
		c.Search = &SearchConfig{
			Start:     DefaultStart,
			Goal:      DefaultGoal,
			RateLimit: DefaultRateLimit,
			MaxDepth:  DefaultMaxDepth,
		}
	}

	if c.Fetcher == nil {
		c.Fetcher = &fetcher.Config{}
	}
	*c.Fetcher = c.Fetcher.WithDefaults()

	if c.Throttle == nil {
		c.Throttle = &ThrottleConfig{}
	}
	if c.Throttle.Mode == "" {
		c.Throttle.Mode = linkoracle.ThrottleInterval
	}

	if c.Logger == nil {
		c.Logger = &logger.Config{}
	}
	if c.Logger.Level == "" {
		c.Logger.Level = logger.DefaultLevel
	}
	if c.Logger.Encoding == "" {
		c.Logger.Encoding = logger.DefaultEncoding
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := validateFetcher(c.Fetcher); err != nil {
		return err
	}

	switch c.Throttle.Mode {
	case linkoracle.ThrottleInterval, linkoracle.ThrottleLimiter, linkoracle.ThrottleNone:
	default:
		return &ValidationError{Field: "throttle.mode", Value: c.Throttle.Mode, Reason: "unknown throttle mode"}
	}

	switch logger.Level(strings.ToLower(string(c.Logger.Level))) {
	case logger.DebugLevel, logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel:
	default:
		return &ValidationError{Field: "logger.level", Value: c.Logger.Level, Reason: "unknown log level"}
	}

	switch c.Logger.Encoding {
	case logger.DefaultEncoding, logger.JSONEncoding:
	default:
		return &ValidationError{Field: "logger.encoding", Value: c.Logger.Encoding, Reason: "must be console or json"}
	}

	return nil
}

func validateFetcher(c *fetcher.Config) error {
	switch c.Engine {
	case fetcher.EngineHTTP, fetcher.EngineColly:
	default:
		return &ValidationError{Field: "fetcher.engine", Value: c.Engine, Reason: "must be http or colly"}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{Field: "fetcher.base_url", Value: c.BaseURL, Reason: "must be an absolute URL"}
	}

	return nil
}
