package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jonesrussell/wikihop/internal/logger"
)

// HTTPFetcher fetches pages with net/http.
type HTTPFetcher struct {
	httpClient  *http.Client
	robots      RobotsAllower
	log         logger.Interface
	userAgent   string
	maxBodySize int64
}

var _ PageFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates an HTTPFetcher. Robots rules are only consulted when
// cfg.RespectRobotsTxt is set.
func NewHTTPFetcher(cfg Config, log logger.Interface) *HTTPFetcher {
	cfg = cfg.WithDefaults()

	client := &http.Client{
		Timeout:       cfg.RequestTimeout,
		CheckRedirect: RedirectPolicy(cfg.MaxRedirects),
	}

	f := &HTTPFetcher{
		httpClient:  client,
		log:         log.WithComponent("fetcher"),
		userAgent:   cfg.UserAgent,
		maxBodySize: int64(cfg.MaxBodySize),
	}
	if cfg.RespectRobotsTxt {
		f.robots = NewRobotsChecker(client, cfg.UserAgent)
	}

	return f
}

// Fetch performs a GET for pageURL and returns the body of a 2xx response.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	if f.robots != nil {
		allowed, err := f.robots.IsAllowed(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%s: %w", pageURL, ErrRobotsBlocked)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http fetch: %w", err)
	}
	defer resp.Body.Close()

	f.log.Debug("Response received", "url", pageURL, "status", resp.StatusCode)

	if !isSuccessStatus(resp.StatusCode) {
		return nil, NewFetchError(pageURL, resp.StatusCode)
	}

	// One byte past the cap tells a full page from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, fmt.Errorf("%s: %w (%d bytes)", pageURL, ErrBodyTooLarge, f.maxBodySize)
	}

	return body, nil
}
