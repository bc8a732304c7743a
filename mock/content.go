package mock

import "github.com/fwojciec/marrow"

var _ marrow.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of marrow.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string, baseURL string) marrow.Fragment
}

func (m *ContentExtractor) ExtractContent(html string, baseURL string) marrow.Fragment {
	return m.ExtractContentFn(html, baseURL)
}
