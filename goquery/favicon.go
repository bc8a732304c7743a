package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/marrow"
)

// Ensure Favicons implements marrow.FaviconFinder at compile time.
var _ marrow.FaviconFinder = (*Favicons)(nil)

// faviconSelectors in preference order: generic icon, shortcut icon, touch
// icon, precomposed touch icon.
var faviconSelectors = []string{
	`link[rel="icon"]`,
	`link[rel="shortcut icon"]`,
	`link[rel="apple-touch-icon"]`,
	`link[rel="apple-touch-icon-precomposed"]`,
}

// Favicons finds favicon link elements in raw HTML. It serves as the
// last-resort tier of the image resolution cascade.
type Favicons struct{}

// NewFavicons creates a new Favicons finder.
func NewFavicons() *Favicons {
	return &Favicons{}
}

// FindFavicon returns the first usable favicon href, resolved against
// baseURL. Inline-encoded (data:) hrefs are skipped, as is any candidate
// that fails relative resolution; a skipped candidate moves on to the next
// selector rather than aborting the search.
func (f *Favicons) FindFavicon(html string, baseURL string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	var base *url.URL
	if u, err := url.Parse(baseURL); err == nil && u.IsAbs() {
		base = u
	}

	for _, selector := range faviconSelectors {
		href, ok := doc.Find(selector).First().Attr("href")
		if !ok {
			continue
		}
		href = strings.TrimSpace(href)
		if href == "" || isDataURI(href) {
			continue
		}
		if resolved := resolveRef(base, href); resolved != "" {
			return resolved, true
		}
	}

	return "", false
}

// isDataURI reports whether href is an inline-encoded image reference.
func isDataURI(href string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "data:")
}
