package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docname"
)

// Ensure LoggingRenamer implements docname.Renamer.
var _ docname.Renamer = (*LoggingRenamer)(nil)

// LoggingRenamer wraps a Renamer with debug logging.
type LoggingRenamer struct {
	next   docname.Renamer
	logger *slog.Logger
}

// NewLoggingRenamer creates a new LoggingRenamer.
func NewLoggingRenamer(next docname.Renamer, logger *slog.Logger) *LoggingRenamer {
	return &LoggingRenamer{next: next, logger: logger}
}

// Rename delegates to the wrapped renamer and logs the operation.
func (r *LoggingRenamer) Rename(ctx context.Context, d docname.RenameDirective) (newPath string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("rename",
			"path", d.Path,
			"new_path", newPath,
			"category", d.Category,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rename(ctx, d)
}
