// Package slog wraps docname services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docname"
)

// Ensure LoggingExtractor implements docname.Extractor.
var _ docname.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   docname.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docname.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, path string) (content *docname.Content, err error) {
	defer func(begin time.Time) {
		var kind docname.ContentKind
		var size int
		if content != nil {
			kind = content.Kind
			size = len(content.String())
		}
		e.logger.Info("extract",
			"path", path,
			"kind", kind,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}
