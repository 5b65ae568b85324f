// Package linkoracle maps a page to the article links found in its body
// content. Every lookup waits on a throttle, fetches the page and extracts
// the links, with no retries.
package linkoracle

import (
	"context"
	"fmt"
	"time"

	"github.com/jonesrussell/wikihop/internal/domain"
	"github.com/jonesrussell/wikihop/internal/fetcher"
	"github.com/jonesrussell/wikihop/internal/logger"
)

// Oracle is the graph edge source of the path finder.
type Oracle struct {
	fetcher   fetcher.PageFetcher
	extractor *Extractor
	throttle  Throttle
	log       logger.Interface
}

// New creates an Oracle.
func New(f fetcher.PageFetcher, extractor *Extractor, throttle Throttle, log logger.Interface) *Oracle {
	return &Oracle{
		fetcher:   f,
		extractor: extractor,
		throttle:  throttle,
		log:       log.WithComponent("linkoracle"),
	}
}

// Links waits for the next slot of the rateLimit budget, fetches page and
// returns its outbound article links in document order. A page whose status
// is not a success surfaces as a *fetcher.FetchError.
func (o *Oracle) Links(ctx context.Context, page domain.PageID, rateLimit int) ([]domain.PageID, error) {
	if rateLimit <= 0 {
		return nil, ErrInvalidRateLimit
	}

	waitStart := time.Now()
	if err := o.throttle.Wait(ctx, rateLimit); err != nil {
		return nil, fmt.Errorf("throttle: %w", err)
	}
	waited := time.Since(waitStart)

	body, err := o.fetcher.Fetch(ctx, page.String())
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", page, err)
	}

	links, err := o.extractor.Extract(body)
	if err != nil {
		return nil, fmt.Errorf("extract links from %s: %w", page, err)
	}

	o.log.Debug("Links extracted",
		"page", page.String(),
		"links", len(links),
		"waited", waited,
	)

	return links, nil
}
