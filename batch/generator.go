package batch

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/docname"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 60 * time.Second

var (
	_ docname.Generator = (*LimitedGenerator)(nil)
	_ docname.Generator = (*TimeoutGenerator)(nil)
)

// LimitedGenerator waits on a token bucket before each call.
type LimitedGenerator struct {
	gen     docname.Generator
	limiter *rate.Limiter
}

// NewLimitedGenerator allows rps calls per second with a burst of 1.
// A non-positive rps returns gen unchanged.
func NewLimitedGenerator(gen docname.Generator, rps float64) docname.Generator {
	if rps <= 0 {
		return gen
	}
	return &LimitedGenerator{gen: gen, limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Generate blocks until the limiter allows a call, then delegates.
func (g *LimitedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return g.gen.Generate(ctx, prompt)
}

// TimeoutGenerator runs each call under its own deadline.
type TimeoutGenerator struct {
	gen     docname.Generator
	timeout time.Duration
}

// NewTimeoutGenerator bounds every call by timeout. A non-positive timeout
// returns gen unchanged.
func NewTimeoutGenerator(gen docname.Generator, timeout time.Duration) docname.Generator {
	if timeout <= 0 {
		return gen
	}
	return &TimeoutGenerator{gen: gen, timeout: timeout}
}

// Generate returns ETIMEOUT when the per-call deadline expires. Cancellation
// of the parent context is returned as is.
func (g *TimeoutGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.gen.Generate(callCtx, prompt)
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return "", docname.Errorf(docname.ETIMEOUT, "model call timed out after %s", g.timeout)
	}
	return out, err
}
