// Package trafilatura extracts main article content using
// markusmobius/go-trafilatura. It is an alternative engine to the
// readability package, selectable through the CLI.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/marrow"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements marrow.ContentExtractor at compile time.
var _ marrow.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to identify the primary content region of
// a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent returns the main content as a markup fragment, or the
// absence sentinel when the underlying capability fails. Failure never
// aborts the pipeline.
func (e *Extractor) ExtractContent(rawHTML string, baseURL string) marrow.Fragment {
	if strings.TrimSpace(rawHTML) == "" {
		return marrow.NoFragment
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(baseURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil || result.ContentNode == nil {
		return marrow.NoFragment
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return marrow.NoFragment
	}

	return marrow.SomeFragment(contentHTML)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
