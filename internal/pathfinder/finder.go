// Package pathfinder computes the shortest chain of article links between
// two pages with a breadth-first search that discovers edges on demand.
package pathfinder

//go:generate mockgen -destination=../../testutils/mocks/pathfinder/mock_oracle.go -package=pathfinder github.com/jonesrussell/wikihop/internal/pathfinder LinkOracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/wikihop/internal/domain"
	"github.com/jonesrussell/wikihop/internal/frontier"
	"github.com/jonesrussell/wikihop/internal/logger"
)

// DefaultMaxDepth is the depth cutoff used when a request does not set one.
const DefaultMaxDepth = 5

// LinkOracle returns the outbound article links of a page.
type LinkOracle interface {
	Links(ctx context.Context, page domain.PageID, rateLimit int) ([]domain.PageID, error)
}

// ErrInvalidMaxDepth is returned for a negative depth cutoff.
var ErrInvalidMaxDepth = errors.New("max depth must not be negative")

// Request describes a single search. MaxDepth is taken as given: zero
// expands only the start page.
type Request struct {
	Start     domain.PageID
	Goal      domain.PageID
	RateLimit int
	MaxDepth  int
}

// NewRequest returns a request using DefaultMaxDepth.
func NewRequest(start, goal domain.PageID, rateLimit int) Request {
	return Request{Start: start, Goal: goal, RateLimit: rateLimit, MaxDepth: DefaultMaxDepth}
}

// Stats summarizes the work done by one search.
type Stats struct {
	PagesFetched    int
	Visited         int
	MaxDepthReached int
}

// Finder runs breadth-first searches against a LinkOracle.
type Finder struct {
	oracle LinkOracle
	log    logger.Interface
}

// NewFinder creates a Finder.
func NewFinder(oracle LinkOracle, log logger.Interface) *Finder {
	return &Finder{
		oracle: oracle,
		log:    log.WithComponent("pathfinder"),
	}
}

// FindShortestPath returns the shortest chain of links from req.Start to
// req.Goal. An empty path with a nil error means no chain was found within
// the depth cutoff.
func (f *Finder) FindShortestPath(ctx context.Context, req Request) (domain.Path, error) {
	path, _, err := f.FindShortestPathWithStats(ctx, req)
	return path, err
}

// FindShortestPathWithStats is FindShortestPath that also reports how much of
// the graph the search touched.
func (f *Finder) FindShortestPathWithStats(ctx context.Context, req Request) (domain.Path, Stats, error) {
	var stats Stats

	if req.MaxDepth < 0 {
		return domain.Path{}, stats, fmt.Errorf("%w: %d", ErrInvalidMaxDepth, req.MaxDepth)
	}

	maxDepth := req.MaxDepth
	log := f.log.With(
		"search_id", uuid.NewString(),
		"start", req.Start.String(),
		"goal", req.Goal.String(),
	)
	log.Info("Search started", "rate_limit", req.RateLimit, "max_depth", maxDepth)

	started := time.Now()
	queue := frontier.NewQueue(frontier.Entry{Path: domain.NewPath(req.Start)})
	visited := frontier.NewVisited(req.Start)

	finish := func(path domain.Path, err error) (domain.Path, Stats, error) {
		stats.Visited = visited.Len()
		fields := []any{
			"pages_fetched", stats.PagesFetched,
			"visited", stats.Visited,
			"max_depth_reached", stats.MaxDepthReached,
		}
		switch {
		case err != nil:
			log.WithError(err).WithDuration(time.Since(started)).Error("Search failed", fields...)
		case path.Empty():
			log.WithDuration(time.Since(started)).Info("No path found", fields...)
		default:
			log.WithDuration(time.Since(started)).Info("Path found", append(fields, "hops", path.Depth())...)
		}
		return path, stats, err
	}

	for {
		entry, ok := queue.Pop()
		if !ok {
			return finish(domain.Path{}, nil)
		}

		// Entries at exactly maxDepth are still expanded once.
		if entry.Depth > maxDepth {
			return finish(domain.Path{}, nil)
		}

		if err := ctx.Err(); err != nil {
			return finish(domain.Path{}, err)
		}

		if entry.Depth > stats.MaxDepthReached {
			stats.MaxDepthReached = entry.Depth
		}

		page := entry.Path.Last()
		links, err := f.oracle.Links(ctx, page, req.RateLimit)
		stats.PagesFetched++
		if err != nil {
			return finish(domain.Path{}, fmt.Errorf("expand %s at depth %d: %w", page, entry.Depth, err))
		}

		log.Debug("Page expanded",
			"page", page.String(),
			"depth", entry.Depth,
			"links", len(links),
			"queued", queue.Len(),
		)

		for _, link := range links {
			if link == req.Goal {
				return finish(entry.Path.Append(link), nil)
			}
			if visited.Add(link) {
				queue.Push(frontier.Entry{Path: entry.Path.Append(link), Depth: entry.Depth + 1})
			}
		}
	}
}
