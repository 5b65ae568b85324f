// Package domain holds the core types shared by the link oracle and the path finder.
package domain

import "strings"

// ArticlePrefix is the path prefix of the article namespace.
const ArticlePrefix = "/wiki/"

// PageID identifies an article by its absolute URL. Two PageIDs refer to the
// same article only when the strings are identical.
type PageID string

// String returns the URL form of the page.
func (p PageID) String() string {
	return string(p)
}

// Title returns the last segment of the article path, or the full id when the
// path is not under the article namespace.
func (p PageID) Title() string {
	s := string(p)
	idx := strings.Index(s, ArticlePrefix)
	if idx < 0 {
		return s
	}
	return s[idx+len(ArticlePrefix):]
}
