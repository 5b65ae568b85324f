// Package fetcher is the page fetch boundary: it downloads a page by URL and
// reports any response whose status does not indicate success as a
// *FetchError. Two engines are available, plain net/http and colly.
package fetcher

import (
	"context"
	"fmt"

	"github.com/jonesrussell/wikihop/internal/logger"
)

//go:generate mockgen -destination=../../testutils/mocks/fetcher/mock_fetcher.go -package=fetcher github.com/jonesrussell/wikihop/internal/fetcher PageFetcher

// PageFetcher downloads the body of a page.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]byte, error)
}

// New returns the fetcher for cfg.Engine.
func New(cfg Config, log logger.Interface) (PageFetcher, error) {
	cfg = cfg.WithDefaults()

	switch cfg.Engine {
	case EngineHTTP:
		return NewHTTPFetcher(cfg, log), nil
	case EngineColly:
		return NewCollyFetcher(cfg, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Engine)
	}
}
