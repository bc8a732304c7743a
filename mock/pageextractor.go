package mock

import (
	"context"

	"github.com/fwojciec/marrow"
)

var _ marrow.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of marrow.PageExtractor.
type PageExtractor struct {
	ExtractPageFn func(ctx context.Context, html string, opts marrow.ExtractOptions) (*marrow.Result, error)
}

func (m *PageExtractor) ExtractPage(ctx context.Context, html string, opts marrow.ExtractOptions) (*marrow.Result, error) {
	return m.ExtractPageFn(ctx, html, opts)
}
