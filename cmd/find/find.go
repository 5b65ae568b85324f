// Package find implements the find command, which searches for the shortest
// chain of article links between two pages.
package find

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/wikihop/cmd/common"
	"github.com/jonesrussell/wikihop/internal/config"
	"github.com/jonesrussell/wikihop/internal/domain"
	"github.com/jonesrussell/wikihop/internal/fetcher"
	"github.com/jonesrussell/wikihop/internal/frontier"
	"github.com/jonesrussell/wikihop/internal/linkoracle"
	"github.com/jonesrussell/wikihop/internal/logger"
	"github.com/jonesrussell/wikihop/internal/pathfinder"
)

// Output formats.
const (
	OutputText  = "text"
	OutputTable = "table"
)

// ErrUnknownOutput is returned for an unsupported --output value.
var ErrUnknownOutput = errors.New("unknown output format")

// Params holds the find operation parameters.
type Params struct {
	Logger logger.Interface
	Config *config.Config
	// Output is OutputText or OutputTable.
	Output string
}

// Command returns the find command. Flags are bound to v so they override
// environment variables and the config file.
func Command(v *viper.Viper) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "find [start] [goal]",
		Short: "Find the shortest chain of links between two articles",
		Long: `Find walks article links breadth-first, fetching one page at a time,
until it reaches the goal article or runs past the maximum depth.

Start and goal may be full article URLs or bare titles.

Examples:
  # Run the default search
  wikihop find

  # Search between two titles at 30 requests per minute
  wikihop find Alan_Turing "Enigma machine" --rate-limit 30

  # Print the chain as a table
  wikihop find https://en.wikipedia.org/wiki/Go_(programming_language) Rob_Pike -o table`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				v.Set("search.start", args[0])
			}
			if len(args) > 1 {
				v.Set("search.goal", args[1])
			}

			deps, err := common.NewCommandDeps(v)
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return Run(ctx, Params{
				Logger: deps.Logger,
				Config: deps.Config,
				Output: output,
			}, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.Int("rate-limit", config.DefaultRateLimit, "Requests per minute")
	flags.Int("max-depth", config.DefaultMaxDepth, "Maximum number of hops")
	flags.String("engine", fetcher.EngineHTTP, "Fetch engine (http or colly)")
	flags.String("throttle", linkoracle.ThrottleInterval, "Throttle mode (interval, limiter or none)")
	flags.Bool("respect-robots", false, "Honor robots.txt rules")
	flags.StringVarP(&output, "output", "o", OutputText, "Output format (text or table)")

	for key, flag := range map[string]string{
		"search.rate_limit":          "rate-limit",
		"search.max_depth":           "max-depth",
		"fetcher.engine":             "engine",
		"throttle.mode":              "throttle",
		"fetcher.respect_robots_txt": "respect-robots",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	return cmd
}

// Run resolves the configured pages, runs the search and writes the result to out.
func Run(ctx context.Context, p Params, out io.Writer) error {
	if p.Output != OutputText && p.Output != OutputTable {
		return fmt.Errorf("%w: %q", ErrUnknownOutput, p.Output)
	}

	cfg := p.Config
	start, err := frontier.ResolveArticle(cfg.Fetcher.BaseURL, cfg.Search.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	goal, err := frontier.ResolveArticle(cfg.Fetcher.BaseURL, cfg.Search.Goal)
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}

	pageFetcher, err := fetcher.New(*cfg.Fetcher, p.Logger)
	if err != nil {
		return fmt.Errorf("create fetcher: %w", err)
	}
	throttle, err := linkoracle.NewThrottle(cfg.Throttle.Mode)
	if err != nil {
		return fmt.Errorf("create throttle: %w", err)
	}

	oracle := linkoracle.New(pageFetcher, linkoracle.NewExtractor(cfg.Fetcher.BaseURL), throttle, p.Logger)
	finder := pathfinder.NewFinder(oracle, p.Logger)

	maxDepth := cfg.Search.MaxDepth

	path, stats, err := finder.FindShortestPathWithStats(ctx, pathfinder.Request{
		Start:     start,
		Goal:      goal,
		RateLimit: cfg.Search.RateLimit,
		MaxDepth:  maxDepth,
	})
	if err != nil {
		return fmt.Errorf("find path: %w", err)
	}

	if path.Empty() {
		_, err = fmt.Fprintf(out, "No chain of links found within %d steps.\n", maxDepth)
		return err
	}

	if p.Output == OutputTable {
		renderTable(out, path, stats)
		return nil
	}

	_, err = fmt.Fprintln(out, path.String())
	return err
}

// renderTable writes one row per hop with a summary footer.
func renderTable(out io.Writer, path domain.Path, stats pathfinder.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.DrawBorder = true

	t.AppendHeader(table.Row{"#", "Article", "URL"})
	for i, id := range path.Nodes() {
		t.AppendRow(table.Row{i, displayTitle(id), id.String()})
	}
	t.AppendFooter(table.Row{
		"Hops",
		path.Depth(),
		fmt.Sprintf("%d pages fetched, %d visited", stats.PagesFetched, stats.Visited),
	})

	t.Render()
}

// displayTitle turns an article path segment into readable text.
func displayTitle(id domain.PageID) string {
	title := id.Title()
	if unescaped, err := url.PathUnescape(title); err == nil {
		title = unescaped
	}
	return strings.ReplaceAll(title, "_", " ")
}
