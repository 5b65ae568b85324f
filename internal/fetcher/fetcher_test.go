package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/wikihop/internal/fetcher"
	"github.com/jonesrussell/wikihop/internal/logger"
)

const (
	testAgent = "TestBot/1.0"
	pageHTML  = `<html><body><div id="bodyContent"><a href="/wiki/Foo">Foo</a></div></body></html>`
)

// newTestServer serves pageHTML on /wiki/Ok and error statuses on the other
// article paths. robots.txt disallows /wiki/Private.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /wiki/Private\n"))
	})
	mux.HandleFunc("/wiki/Ok", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(pageHTML))
	})
	mux.HandleFunc("/wiki/Private", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(pageHTML))
	})
	mux.HandleFunc("/wiki/Missing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/wiki/Broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/wiki/Forbidden", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/wiki/Loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/wiki/Loop", http.StatusFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

// engines returns a constructor per fetch engine so every behavior is checked on both.
func engines() map[string]func(cfg fetcher.Config) fetcher.PageFetcher {
	return map[string]func(cfg fetcher.Config) fetcher.PageFetcher{
		fetcher.EngineHTTP: func(cfg fetcher.Config) fetcher.PageFetcher {
			return fetcher.NewHTTPFetcher(cfg, logger.NewNoOp())
		},
		fetcher.EngineColly: func(cfg fetcher.Config) fetcher.PageFetcher {
			return fetcher.NewCollyFetcher(cfg, logger.NewNoOp())
		},
	}
}

func TestFetch_Success(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	for name, newFetcher := range engines() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := newFetcher(fetcher.Config{UserAgent: testAgent})

			body, err := f.Fetch(context.Background(), server.URL+"/wiki/Ok")
			require.NoError(t, err)
			assert.Equal(t, pageHTML, string(body))
		})
	}
}

func TestFetch_StatusErrors(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantReason string
		wantMsg    string
	}{
		{"/wiki/Missing", http.StatusNotFound, fetcher.ReasonNotFound,
			"Your request returned 404 status code. The requested resource wasn't found."},
		{"/wiki/Broken", http.StatusInternalServerError, fetcher.ReasonServerError,
			"Your request returned 500 status code. The server encountered an internal error."},
		{"/wiki/Forbidden", http.StatusForbidden, fetcher.ReasonUnexpectedStatus,
			"Your request returned 403 status code."},
	}

	for name, newFetcher := range engines() {
		for _, tt := range tests {
			t.Run(name+tt.path, func(t *testing.T) {
				t.Parallel()

				f := newFetcher(fetcher.Config{})

				body, err := f.Fetch(context.Background(), server.URL+tt.path)
				require.Error(t, err)
				assert.Nil(t, body)

				fe, ok := fetcher.IsFetchError(err)
				require.True(t, ok, "expected *FetchError, got %T", err)
				assert.Equal(t, tt.wantStatus, fe.StatusCode)
				assert.Equal(t, tt.wantReason, fe.Reason)
				assert.Equal(t, server.URL+tt.path, fe.URL)
				assert.Contains(t, fe.Error(), tt.wantMsg)
			})
		}
	}
}

func TestFetch_BodySizeCap(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	size := len(pageHTML)

	for name, newFetcher := range engines() {
		t.Run(name+"/at cap", func(t *testing.T) {
			t.Parallel()

			body, err := newFetcher(fetcher.Config{MaxBodySize: size}).Fetch(context.Background(), server.URL+"/wiki/Ok")
			require.NoError(t, err)
			assert.Equal(t, pageHTML, string(body))
		})

		t.Run(name+"/over cap", func(t *testing.T) {
			t.Parallel()

			body, err := newFetcher(fetcher.Config{MaxBodySize: size - 1}).Fetch(context.Background(), server.URL+"/wiki/Ok")
			require.ErrorIs(t, err, fetcher.ErrBodyTooLarge)
			assert.Nil(t, body)
		})
	}
}

func TestFetch_RobotsBlocked(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	for name, newFetcher := range engines() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := newFetcher(fetcher.Config{RespectRobotsTxt: true})

			_, err := f.Fetch(context.Background(), server.URL+"/wiki/Private")
			require.ErrorIs(t, err, fetcher.ErrRobotsBlocked)

			_, err = f.Fetch(context.Background(), server.URL+"/wiki/Ok")
			require.NoError(t, err)
		})
	}
}

func TestFetch_RobotsIgnoredByDefault(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	for name, newFetcher := range engines() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := newFetcher(fetcher.Config{})

			_, err := f.Fetch(context.Background(), server.URL+"/wiki/Private")
			require.NoError(t, err)
		})
	}
}

func TestHTTPFetcher_RedirectLimit(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	f := fetcher.NewHTTPFetcher(fetcher.Config{MaxRedirects: 3}, logger.NewNoOp())

	_, err := f.Fetch(context.Background(), server.URL+"/wiki/Loop")
	require.ErrorIs(t, err, fetcher.ErrTooManyRedirects)
}

func TestHTTPFetcher_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	f := fetcher.NewHTTPFetcher(fetcher.Config{}, logger.NewNoOp())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, server.URL+"/wiki/Ok")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_Engines(t *testing.T) {
	t.Parallel()

	f, err := fetcher.New(fetcher.Config{}, logger.NewNoOp())
	require.NoError(t, err)
	assert.IsType(t, &fetcher.HTTPFetcher{}, f)

	f, err = fetcher.New(fetcher.Config{Engine: fetcher.EngineColly}, logger.NewNoOp())
	require.NoError(t, err)
	assert.IsType(t, &fetcher.CollyFetcher{}, f)

	_, err = fetcher.New(fetcher.Config{Engine: "curl"}, logger.NewNoOp())
	require.ErrorIs(t, err, fetcher.ErrUnknownEngine)
}

func TestIsFetchError_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("expand page"), fetcher.NewFetchError("u", http.StatusBadGateway))

	fe, ok := fetcher.IsFetchError(wrapped)
	require.True(t, ok)
	assert.Equal(t, fetcher.ReasonUnexpectedStatus, fe.Reason)

	_, ok = fetcher.IsFetchError(errors.New("plain"))
	assert.False(t, ok)
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	cfg := fetcher.Config{}.WithDefaults()

	assert.Equal(t, fetcher.EngineHTTP, cfg.Engine)
	assert.Equal(t, fetcher.DefaultBaseURL, cfg.BaseURL)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Positive(t, cfg.RequestTimeout)
	assert.Positive(t, cfg.MaxRedirects)
	assert.Positive(t, cfg.MaxBodySize)
	assert.False(t, cfg.RespectRobotsTxt)
}
