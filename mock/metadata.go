package mock

import "github.com/fwojciec/marrow"

var _ marrow.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of marrow.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string, baseURL string) (marrow.Metadata, error)
}

func (m *MetadataExtractor) ExtractMetadata(html string, baseURL string) (marrow.Metadata, error) {
	return m.ExtractMetadataFn(html, baseURL)
}
