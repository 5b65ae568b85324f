package linkoracle

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/wikihop/internal/domain"
)

const (
	// bodyContentSelector locates the main content container of an article.
	bodyContentSelector = "div#bodyContent"
	// linkSelector matches anchors carrying an href attribute.
	linkSelector = "a[href]"
	// namespaceSeparator marks non-article namespaces such as Category: or Talk:.
	namespaceSeparator = ":"
)

// Extractor pulls article links out of a page body.
type Extractor struct {
	baseURL string
}

// NewExtractor creates an extractor that resolves hrefs against baseURL.
func NewExtractor(baseURL string) *Extractor {
	return &Extractor{baseURL: strings.TrimRight(baseURL, "/")}
}

// Extract returns every article link inside the first body content container,
// in document order and with duplicates kept. Each link is the base URL
// concatenated with the href.
func (e *Extractor) Extract(body []byte) ([]domain.PageID, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	content := doc.Find(bodyContentSelector).First()
	if content.Length() == 0 {
		return nil, ErrNoBodyContent
	}

	var links []domain.PageID
	content.Find(linkSelector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if IsArticleHref(href) {
			links = append(links, domain.PageID(e.baseURL+href))
		}
	})

	return links, nil
}

// IsArticleHref reports whether href points into the article namespace.
func IsArticleHref(href string) bool {
	return strings.HasPrefix(href, domain.ArticlePrefix) && !strings.Contains(href, namespaceSeparator)
}
