package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/temoto/robotstxt"
)

// robotsTxtPath is the well-known path for robots.txt files.
const robotsTxtPath = "/robots.txt"

// maxRobotsBodyBytes limits the size of robots.txt responses we will read.
const maxRobotsBodyBytes = 512 * 1024 // 512 KB

// RobotsAllower checks robots.txt compliance.
type RobotsAllower interface {
	IsAllowed(ctx context.Context, rawURL string) (bool, error)
}

// RobotsChecker checks robots.txt rules and caches them per host for the
// lifetime of the checker. A search runs sequentially, so the cache is not
// guarded.
type RobotsChecker struct {
	httpClient *http.Client
	userAgent  string
	cache      map[string]*robotstxt.RobotsData // nil entry means allow all
}

var _ RobotsAllower = (*RobotsChecker)(nil)

// NewRobotsChecker creates a new RobotsChecker.
func NewRobotsChecker(httpClient *http.Client, userAgent string) *RobotsChecker {
	return &RobotsChecker{
		httpClient: httpClient,
		userAgent:  userAgent,
		cache:      make(map[string]*robotstxt.RobotsData),
	}
}

// IsAllowed checks if the given URL is allowed by the host's robots.txt.
// Missing, unreadable or unparsable robots.txt files allow everything.
func (r *RobotsChecker) IsAllowed(ctx context.Context, rawURL string) (bool, error) {
	parsed, parseErr := url.Parse(rawURL)
	if parseErr != nil {
		return false, fmt.Errorf("robots: parse url: %w", parseErr)
	}

	host := strings.ToLower(parsed.Host)
	if host == "" {
		return false, fmt.Errorf("robots: empty host in url %q", rawURL)
	}

	data, cached := r.cache[host]
	if !cached {
		data = r.fetch(ctx, parsed.Scheme, host)
		r.cache[host] = data
	}

	if data == nil {
		return true, nil
	}

	return data.TestAgent(parsed.Path, r.userAgent), nil
}

// fetch downloads and parses robots.txt for host. It returns nil when the
// file should be treated as allow-all.
func (r *RobotsChecker) fetch(ctx context.Context, scheme, host string) *robotstxt.RobotsData {
	if scheme == "" {
		scheme = "https"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scheme+"://"+host+robotsTxtPath, http.NoBody)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if !isSuccessStatus(resp.StatusCode) {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBodyBytes))
	if err != nil {
		return nil
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}

	return data
}
