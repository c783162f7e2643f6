// Package llm defines the completion contract the resume features call.
package llm

import (
	"context"
	"errors"
)

// Request is a single chat completion: one system and one user message.
type Request struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	// JSON asks the provider to constrain output to a JSON object.
	JSON bool
	// Feature labels the call in logs and metrics.
	Feature string
}

// Usage reports token accounting returned by the provider.
type Usage struct {
	PromptTokens     int64 `json:"promptTokens"`
	CompletionTokens int64 `json:"completionTokens"`
	TotalTokens      int64 `json:"totalTokens"`
}

// Completion is the first choice of a completion response.
type Completion struct {
	Content string
	Model   string
	Usage   Usage
}

// Client abstracts LLM providers. Implementations make exactly one upstream call.
type Client interface {
	Complete(ctx context.Context, req Request) (Completion, error)
}

var (
	// ErrNotImplemented is returned by the placeholder client.
	ErrNotImplemented = errors.New("LLM not configured")
	// ErrEmptyCompletion is returned when the provider answers without content.
	ErrEmptyCompletion = errors.New("LLM returned no content")
)

// PlaceholderClient is used when no provider is configured.
type PlaceholderClient struct{}

// Complete returns ErrNotImplemented.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (Completion, error) {
	_ = ctx
	_ = req
	return Completion{}, ErrNotImplemented
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (Completion, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, req Request) (Completion, error) {
	return f(ctx, req)
}
