// Package slog provides logging decorators for marrow services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/marrow"
)

// Ensure LoggingMetadataExtractor implements marrow.MetadataExtractor.
var _ marrow.MetadataExtractor = (*LoggingMetadataExtractor)(nil)

// LoggingMetadataExtractor wraps a MetadataExtractor with debug logging.
type LoggingMetadataExtractor struct {
	next   marrow.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingMetadataExtractor creates a new LoggingMetadataExtractor.
func NewLoggingMetadataExtractor(next marrow.MetadataExtractor, logger *slog.Logger) *LoggingMetadataExtractor {
	return &LoggingMetadataExtractor{next: next, logger: logger}
}

// ExtractMetadata delegates to the wrapped extractor and logs the operation.
func (e *LoggingMetadataExtractor) ExtractMetadata(html string, baseURL string) (meta marrow.Metadata, err error) {
	defer func(begin time.Time) {
		e.logger.Info("metadata extraction",
			"url", baseURL,
			"title", meta.Title,
			"image", meta.Image != "",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractMetadata(html, baseURL)
}
