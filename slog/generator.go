package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docname"
)

// Ensure LoggingGenerator implements docname.Generator.
var _ docname.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging.
type LoggingGenerator struct {
	next   docname.Generator
	model  string
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next docname.Generator, model string, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, model: model, logger: logger}
}

// Generate delegates to the wrapped generator and logs the exchange.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (reply string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"model", g.model,
			"prompt_bytes", len(prompt),
			"reply", reply,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}
