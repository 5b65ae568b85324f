package frontier

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonesrussell/wikihop/internal/domain"
)

// defaultPorts maps schemes to their default port strings.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

var (
	errEmptyInput          = errors.New("resolve article: empty input")
	errMissingSchemeOrHost = errors.New("resolve article: missing scheme or host")
	errEmptyBaseURL        = errors.New("resolve article: empty base url")
)

// ResolveArticle turns user input into a page id. Input that already carries a
// scheme is treated as a URL and has its scheme and host canonicalized; the
// path, query and fragment are kept as given because page ids compare as exact
// strings against links built from hrefs. Anything else is treated as an
// article title under baseURL, with spaces mapped to underscores and non-ASCII
// bytes percent-encoded the way article hrefs are.
func ResolveArticle(baseURL, input string) (domain.PageID, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errEmptyInput
	}

	if strings.Contains(input, "://") {
		canonical, err := canonicalizeURL(input)
		if err != nil {
			return "", err
		}
		return domain.PageID(canonical), nil
	}

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return "", errEmptyBaseURL
	}

	title := strings.TrimPrefix(input, domain.ArticlePrefix)
	title = strings.TrimPrefix(title, "/")

	return domain.PageID(base + domain.ArticlePrefix + escapeTitle(title)), nil
}

// canonicalizeURL lowercases scheme and host and drops the scheme's default port.
func canonicalizeURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("resolve article: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errMissingSchemeOrHost
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = normalizeHost(parsed)

	return parsed.String(), nil
}

// normalizeHost lowercases the hostname and removes the default port of the
// URL's scheme.
func normalizeHost(u *url.URL) string {
	hostname := strings.ToLower(u.Hostname())
	port := u.Port()

	if port == "" {
		return hostname
	}

	if defaultPort, ok := defaultPorts[u.Scheme]; ok && port == defaultPort {
		return hostname
	}

	return hostname + ":" + port
}

// escapeTitle maps spaces to underscores and percent-encodes bytes outside
// printable ASCII, leaving punctuation such as parentheses untouched.
func escapeTitle(title string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(title))

	for i := range len(title) {
		c := title[i]
		switch {
		case c == ' ':
			b.WriteByte('_')
		case c < 0x21 || c >= 0x7f:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
