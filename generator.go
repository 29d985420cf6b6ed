package docname

import "context"

// Generator produces a single text completion for a prompt.
type Generator interface {
	// Generate sends prompt to the language model and returns its reply.
	Generate(ctx context.Context, prompt string) (string, error)
}
