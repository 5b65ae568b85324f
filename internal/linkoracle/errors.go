package linkoracle

import "errors"

var (
	// ErrInvalidRateLimit is returned when the requests-per-minute budget is not positive.
	ErrInvalidRateLimit = errors.New("rate limit must be positive")
	// ErrNoBodyContent is returned when a page has no main content container.
	ErrNoBodyContent = errors.New("page has no body content")
	// ErrUnknownThrottleMode is returned by NewThrottle for an unsupported mode.
	ErrUnknownThrottleMode = errors.New("unknown throttle mode")
)
