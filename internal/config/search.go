package config

// Search defaults: the classic Lewis Hamilton to Dietrich Mateschitz hop at ten requests per minute.
const (
	DefaultStart     = "Lewis_Hamilton"
	DefaultGoal      = "Dietrich_Mateschitz"
	DefaultRateLimit = 10
	DefaultMaxDepth  = 5
)

// SearchConfig holds the parameters of a single search. Start and Goal are
// article titles or absolute URLs.
type SearchConfig struct {
	Start     string `mapstructure:"start"      yaml:"start"`
	Goal      string `mapstructure:"goal"       yaml:"goal"`
	RateLimit int    `mapstructure:"rate_limit" yaml:"rate_limit"`
	MaxDepth  int    `mapstructure:"max_depth"  yaml:"max_depth"`
}

// Validate checks the search parameters.
func (c *SearchConfig) Validate() error {
	if c.Start == "" {
		return &ValidationError{Field: "search.start", Value: c.Start, Reason: "must not be empty"}
	}
	if c.Goal == "" {
		return &ValidationError{Field: "search.goal", Value: c.Goal, Reason: "must not be empty"}
	}
	if c.RateLimit <= 0 {
		return &ValidationError{Field: "search.rate_limit", Value: c.RateLimit, Reason: "must be positive"}
	}
	if c.MaxDepth < 0 {
		return &ValidationError{Field: "search.max_depth", Value: c.MaxDepth, Reason: "must not be negative"}
	}
	return nil
}
