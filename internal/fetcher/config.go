package fetcher

import "time"

// Engine names accepted by New.
const (
	EngineHTTP  = "http"
	EngineColly = "colly"
)

// Default configuration values.
const (
	DefaultBaseURL        = "https://en.wikipedia.org"
	defaultEngine         = EngineHTTP
	defaultUserAgent      = "wikihop/1.0"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxRedirects   = 10
	defaultMaxBodySize    = 10 * 1024 * 1024 // 10 MB
)

// Config holds page fetcher configuration.
type Config struct {
	Engine           string        `mapstructure:"engine"             yaml:"engine"`
	BaseURL          string        `mapstructure:"base_url"           yaml:"base_url"`
	UserAgent        string        `mapstructure:"user_agent"         yaml:"user_agent"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"    yaml:"request_timeout"`
	MaxRedirects     int           `mapstructure:"max_redirects"      yaml:"max_redirects"`
	MaxBodySize      int           `mapstructure:"max_body_size"      yaml:"max_body_size"`
	RespectRobotsTxt bool          `mapstructure:"respect_robots_txt" yaml:"respect_robots_txt"`
}

// WithDefaults returns a copy of the config with default values applied for zero-value fields.
func (c Config) WithDefaults() Config {
	if c.Engine == "" {
		c.Engine = defaultEngine
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = defaultMaxRedirects
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = defaultMaxBodySize
	}
	return c
}
