package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTooManyRedirects is returned once a fetch has followed the configured
// number of redirects.
var ErrTooManyRedirects = errors.New("too many redirects")

// RedirectPolicy caps a redirect chain at maxHops. Both engines install it.
// A non-positive maxHops uses the default cap.
func RedirectPolicy(maxHops int) func(req *http.Request, via []*http.Request) error {
	if maxHops <= 0 {
		maxHops = defaultMaxRedirects
	}
	return func(_ *http.Request, via []*http.Request) error {
		if len(via) < maxHops {
			return nil
		}
		return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, maxHops)
	}
}
