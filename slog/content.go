package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/marrow"
)

// Ensure LoggingContentExtractor implements marrow.ContentExtractor.
var _ marrow.ContentExtractor = (*LoggingContentExtractor)(nil)

// LoggingContentExtractor wraps a ContentExtractor with debug logging.
type LoggingContentExtractor struct {
	next   marrow.ContentExtractor
	logger *slog.Logger
}

// NewLoggingContentExtractor creates a new LoggingContentExtractor.
func NewLoggingContentExtractor(next marrow.ContentExtractor, logger *slog.Logger) *LoggingContentExtractor {
	return &LoggingContentExtractor{next: next, logger: logger}
}

// ExtractContent delegates to the wrapped extractor and logs the operation.
func (e *LoggingContentExtractor) ExtractContent(html string, baseURL string) (frag marrow.Fragment) {
	defer func(begin time.Time) {
		e.logger.Info("content extraction",
			"url", baseURL,
			"found", frag.Found,
			"bytes", len(frag.HTML),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractContent(html, baseURL)
}
