package fetcher

import (
	"context"
	"errors"
	"fmt"

	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/wikihop/internal/logger"
)

// CollyFetcher fetches pages with a colly collector. Every Fetch runs on a
// clone of the base collector so callbacks and the request context stay
// local to that call.
type CollyFetcher struct {
	base        *colly.Collector
	log         logger.Interface
	maxBodySize int
}

var _ PageFetcher = (*CollyFetcher)(nil)

// NewCollyFetcher creates a CollyFetcher from cfg.
func NewCollyFetcher(cfg Config, log logger.Interface) *CollyFetcher {
	cfg = cfg.WithDefaults()

	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		// colly truncates silently; the extra byte exposes an oversized page.
		colly.MaxBodySize(cfg.MaxBodySize+1),
		colly.ParseHTTPErrorResponse(),
		colly.AllowURLRevisit(),
	)
	c.IgnoreRobotsTxt = !cfg.RespectRobotsTxt
	c.SetRequestTimeout(cfg.RequestTimeout)
	c.SetRedirectHandler(RedirectPolicy(cfg.MaxRedirects))

	return &CollyFetcher{
		base:        c,
		log:         log.WithComponent("fetcher"),
		maxBodySize: cfg.MaxBodySize,
	}
}

// Fetch visits pageURL and returns the body of a 2xx response.
func (f *CollyFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	c := f.base.Clone()
	c.Context = ctx

	var (
		body   []byte
		status int
	)

	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})

	if err := c.Visit(pageURL); err != nil {
		if errors.Is(err, colly.ErrRobotsTxtBlocked) {
			return nil, fmt.Errorf("%s: %w", pageURL, ErrRobotsBlocked)
		}
		return nil, fmt.Errorf("colly fetch: %w", err)
	}

	f.log.Debug("Response received", "url", pageURL, "status", status)

	if !isSuccessStatus(status) {
		return nil, NewFetchError(pageURL, status)
	}
	if len(body) > f.maxBodySize {
		return nil, fmt.Errorf("%s: %w (%d bytes)", pageURL, ErrBodyTooLarge, f.maxBodySize)
	}

	return body, nil
}
