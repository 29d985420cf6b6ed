// Package openai implements docname.Generator against any OpenAI-compatible
// chat completion endpoint, including a local Ollama server.
package openai

import (
	"context"
	"fmt"

	"github.com/fwojciec/docname"
	"github.com/sashabaranov/go-openai"
)

const (
	// OllamaBaseURL is the OpenAI-compatible endpoint of a local Ollama server.
	OllamaBaseURL = "http://localhost:11434/v1"

	// OllamaModel is the default model served by Ollama.
	OllamaModel = "llama3.1"

	// OpenAIModel is the default model for the hosted OpenAI API.
	OpenAIModel = "gpt-4o-mini"
)

// Ensure Generator implements docname.Generator at compile time.
var _ docname.Generator = (*Generator)(nil)

// ChatClient is the subset of *openai.Client used by Generator.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator implements docname.Generator using chat completions.
type Generator struct {
	client ChatClient
	model  string
}

// NewGenerator creates a new Generator.
func NewGenerator(client ChatClient, model string) *Generator {
	return &Generator{client: client, model: model}
}

// NewClient builds a client for baseURL. An empty baseURL targets the hosted
// OpenAI API. Ollama ignores the key, so an empty apiKey is allowed.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Model returns the model name requests are sent to.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt as a single user message and returns the first choice.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", docname.Errorf(docname.EINVALID, "prompt required")
	}
	if g.model == "" {
		return "", docname.Errorf(docname.EINVALID, "model required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", docname.Errorf(docname.EINTERNAL, "no choices returned from %s", g.model)
	}

	return resp.Choices[0].Message.Content, nil
}
