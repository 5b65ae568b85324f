package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason strings classifying a failed fetch.
const (
	ReasonNotFound         = "not_found"
	ReasonServerError      = "server_error"
	ReasonUnexpectedStatus = "unexpected_status"
)

var (
	// ErrRobotsBlocked is returned when robots.txt disallows fetching a page.
	ErrRobotsBlocked = errors.New("blocked by robots.txt")
	// ErrUnknownEngine is returned by New for an unsupported engine name.
	ErrUnknownEngine = errors.New("unknown fetch engine")
	// ErrBodyTooLarge is returned when a page exceeds the configured body size.
	ErrBodyTooLarge = errors.New("response body exceeds max body size")
)

// FetchError reports a response whose status does not indicate success.
type FetchError struct {
	URL        string
	StatusCode int
	Reason     string
}

// NewFetchError classifies statusCode and returns the matching error.
func NewFetchError(pageURL string, statusCode int) *FetchError {
	return &FetchError{
		URL:        pageURL,
		StatusCode: statusCode,
		Reason:     classifyStatus(statusCode),
	}
}

// Error returns the message shown to users, e.g.
// "Your request returned 404 status code. The requested resource wasn't found."
func (e *FetchError) Error() string {
	msg := fmt.Sprintf("Your request returned %d status code.", e.StatusCode)
	switch e.Reason {
	case ReasonNotFound:
		msg += " The requested resource wasn't found."
	case ReasonServerError:
		msg += " The server encountered an internal error."
	}
	if e.URL != "" {
		msg = e.URL + ": " + msg
	}
	return msg
}

// IsFetchError reports whether err is or wraps a *FetchError and returns it.
func IsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func classifyStatus(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return ReasonNotFound
	case http.StatusInternalServerError:
		return ReasonServerError
	default:
		return ReasonUnexpectedStatus
	}
}

// statusSuccessLow is the lower bound (inclusive) for HTTP success status codes.
const statusSuccessLow = 200

// statusSuccessHigh is the upper bound (exclusive) for HTTP success status codes.
const statusSuccessHigh = 300

// isSuccessStatus returns true if the HTTP status code is in the 2xx range.
func isSuccessStatus(statusCode int) bool {
	return statusCode >= statusSuccessLow && statusCode < statusSuccessHigh
}
