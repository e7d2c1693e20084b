// Package llm provides the generative model client used for article
// generation and structured metadata extraction.
package llm

import (
	"context"
)

// Request is a single completion call.
type Request struct {
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response is the model output for one completion call.
type Response struct {
	Content    string `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason,omitempty"`
	Usage      Usage  `json:"usage"`
}

// Provider defines the interface for generative model providers.
type Provider interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	HealthCheck(ctx context.Context) error
	Model() string
}
