// Package readability extracts main article content using
// go-shiori/go-readability, a port of Mozilla's Readability
// content-density heuristics.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/marrow"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements marrow.ContentExtractor at compile time.
var _ marrow.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to identify the primary content region of
// a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent returns the main content as a markup fragment. Every
// failure mode of the underlying capability (parse error, no content
// region) normalizes to the absence sentinel; extraction failure never
// aborts the pipeline.
func (e *Extractor) ExtractContent(html string, baseURL string) marrow.Fragment {
	if strings.TrimSpace(html) == "" {
		return marrow.NoFragment
	}

	var pageURL *url.URL
	if u, err := url.Parse(baseURL); err == nil && u.IsAbs() {
		pageURL = u
	}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		return marrow.NoFragment
	}

	return marrow.SomeFragment(article.Content)
}
