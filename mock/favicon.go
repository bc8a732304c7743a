package mock

import "github.com/fwojciec/marrow"

var _ marrow.FaviconFinder = (*FaviconFinder)(nil)

// FaviconFinder is a mock implementation of marrow.FaviconFinder.
type FaviconFinder struct {
	FindFaviconFn func(html string, baseURL string) (string, bool)
}

func (m *FaviconFinder) FindFavicon(html string, baseURL string) (string, bool) {
	return m.FindFaviconFn(html, baseURL)
}
